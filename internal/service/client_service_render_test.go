package service

import (
	"context"
	"testing"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRenderService_TerminalArt(t *testing.T) {
	svc := NewClientRenderService(qr.NewRenderer(), 128, logger.Nop())
	encoded := models.EncodedPayload{Kind: models.GenericText, Text: "https://example.com"}

	t.Run("renders block art", func(t *testing.T) {
		art, err := svc.TerminalArt(context.Background(), encoded)

		require.NoError(t, err)
		assert.NotEmpty(t, art)
		assert.Contains(t, art, "\n")
	})

	t.Run("deterministic for same payload", func(t *testing.T) {
		first, err := svc.TerminalArt(context.Background(), encoded)
		require.NoError(t, err)
		second, err := svc.TerminalArt(context.Background(), encoded)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := svc.TerminalArt(context.Background(), models.EncodedPayload{Kind: models.GenericText})

		assert.ErrorIs(t, err, ErrEmptyPayload)
	})
}

func TestClientRenderService_PNG(t *testing.T) {
	svc := NewClientRenderService(qr.NewRenderer(), 128, logger.Nop())
	encoded := models.EncodedPayload{Kind: models.GenericText, Text: "hello"}

	t.Run("renders png bytes", func(t *testing.T) {
		png, err := svc.PNG(context.Background(), encoded, 64)

		require.NoError(t, err)
		require.Greater(t, len(png), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		png, err := svc.PNG(context.Background(), encoded, 0)

		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := svc.PNG(context.Background(), models.EncodedPayload{Kind: models.GenericText}, 64)

		assert.ErrorIs(t, err, ErrEmptyPayload)
	})
}
