// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig appends a pre-built source, letting tests exercise the merge
// logic without touching the process environment or os.Args.
func (b *configBuilder) withConfig(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	// Arrange: two sources disagree on the server address; the first one
	// added must win.
	first := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:9999"},
	}
	second := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:1111", RequestTimeout: 10 * time.Second},
		Render: Render{PNGSize: 128},
	}

	// Act
	cfg, err := newConfigBuilder().
		withConfig(first).
		withConfig(second).
		build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	// Fields unset in the first source fall through to the second.
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 128, cfg.Render.PNGSize)
}

func TestConfigBuilder_DefaultsFillGaps(t *testing.T) {
	explicit := &StructuredConfig{
		Server: Server{HTTPAddress: "0.0.0.0:8088"},
	}

	cfg, err := newConfigBuilder().
		withConfig(explicit).
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "qr-mint.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 200, cfg.Workers.HistoryLimit)
}

func TestConfigBuilder_ValidationFailure(t *testing.T) {
	t.Run("missing server address", func(t *testing.T) {
		broken := &StructuredConfig{
			Server: Server{RequestTimeout: time.Second},
			Render: Render{PNGSize: 256},
		}

		_, err := newConfigBuilder().withConfig(broken).build()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	})

	t.Run("non-positive png size", func(t *testing.T) {
		broken := &StructuredConfig{
			Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		}

		_, err := newConfigBuilder().withConfig(broken).build()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRenderConfigs)
	})
}

func TestConfigBuilder_SourceErrorPropagates(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("bad source")

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad source")
}

func TestConfigBuilder_WithJSON_UsesResolvedPath(t *testing.T) {
	path := writeTempJSON(t, `{
		"server": {"http_address": "json-host:7070", "request_timeout": "20s"},
		"render": {"png_size": 200}
	}`)

	pointer := &StructuredConfig{JSONFilePath: path}

	cfg, err := newConfigBuilder().
		withConfig(pointer).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "json-host:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 200, cfg.Render.PNGSize)
}

func TestConfigBuilder_WithJSON_MissingFile(t *testing.T) {
	pointer := &StructuredConfig{JSONFilePath: "/no/such/config.json"}

	_, err := newConfigBuilder().
		withConfig(pointer).
		withJSON().
		build()

	require.Error(t, err)
}
