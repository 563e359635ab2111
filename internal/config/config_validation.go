// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Render.PNGSize <= 0 {
		return ErrInvalidRenderConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.ExportsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Render.PNGSize <= 0 {
		return ErrInvalidRenderConfigs
	}

	// Remote mode is optional; the timeout only matters once an address
	// is configured.
	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HistoryLimit <= 0 || cfg.Workers.PruneInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
