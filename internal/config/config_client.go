package config

import (
	"fmt"
	"time"
)

// ClientRender holds QR rendering settings used by the TUI client.
type ClientRender struct {
	// PNGSize is the edge length in pixels for saved PNG files.
	PNGSize int
}

// ClientAdapter holds network settings for thin-client mode. An empty
// HTTPAddress means all generation happens locally.
type ClientAdapter struct {
	// HTTPAddress is the base URL of a remote qr-mint server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains history database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the generation history.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds history database settings.
	DB ClientDB
	// ExportsDir is the directory saved PNG files are written to.
	ExportsDir string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// HistoryLimit caps how many history entries the prune job keeps.
	HistoryLimit int
	// PruneInterval defines how often the prune job runs.
	PruneInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Render contains rendering settings.
	Render ClientRender
	// Adapter contains remote backend settings.
	Adapter ClientAdapter
	// Storage contains history and export settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Render: ClientRender{
			PNGSize: cfg.Render.PNGSize,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
			ExportsDir: cfg.Storage.Exports.Dir,
		},
		Workers: ClientWorkers{
			HistoryLimit:  cfg.Workers.HistoryLimit,
			PruneInterval: cfg.Workers.PruneInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
