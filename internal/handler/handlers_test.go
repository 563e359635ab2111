package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/internal/config"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/service"
	"github.com/dkovalev/qr-mint/models"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:    config.App{Version: "test"},
		Render: config.Render{PNGSize: 128},
	}
	services, err := service.NewServices(cfg, models.NewAppBuildInfo("test", "", ""), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewHandlers(t *testing.T) {
	t.Run("http handler is created", func(t *testing.T) {
		handlers, err := NewHandlers(newTestServices(t), config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
	})

	t.Run("no address configured", func(t *testing.T) {
		_, err := NewHandlers(newTestServices(t), config.Server{}, logger.Nop())

		require.ErrorIs(t, err, errNoHandlersAreCreated)
	})
}
