// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

// Package config loads, merges, and validates the configuration of both
// taskdeck binaries.
//
// Values come from three sources, merged in priority order (environment
// variables, then command-line flags, then an optional JSON file), with
// hard-coded defaults filling whatever remains unset. The server and the
// terminal client consume different views of the same structured config:
// [GetStructuredConfig] for the server, [GetClientConfig] for the client.
package config
