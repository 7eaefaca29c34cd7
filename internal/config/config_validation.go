// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate runs after the sources are merged. The server config stays
// permissive because every field has a usable default, so a zero config
// must pass.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate rejects a client config that cannot reach the remote store,
// persist a replica, or drain the deferred queue.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Cache.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DrainInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
