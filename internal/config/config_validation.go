// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Taskdeck Authors

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// server startup invariants.
//
// The token sign key rule is the production posture required of the token
// service: an absent signing secret is a fatal configuration error when
// App.Env is "production". Development silently runs on the documented
// insecure default instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env == EnvProduction {
		if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenSignKey == DefaultTokenSignKey {
			return fmt.Errorf("%w: token sign key must be set in production", ErrInvalidAuthConfigs)
		}
	}

	if cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
	}

	return nil
}

// validate checks the client-specific configuration view.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
