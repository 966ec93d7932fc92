// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and the background session
// check into a single process lifecycle.
package client
