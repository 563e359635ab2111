package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
)

func newTestQRService(defaultSize int) QRService {
	return NewQRService(payload.NewGenerator(), qr.NewRenderer(), defaultSize, logger.Nop())
}

func TestGeneratePayload(t *testing.T) {
	ctx := context.Background()
	svc := newTestQRService(0)

	t.Run("wifi request encodes", func(t *testing.T) {
		encoded, err := svc.GeneratePayload(ctx, models.GenerateRequest{
			Kind: models.WiFi,
			WiFi: &models.WiFiFields{SSID: "Home", Password: "secret1", Encryption: models.EncryptionWPA},
		})

		require.NoError(t, err)
		assert.Equal(t, models.WiFi, encoded.Kind)
		assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret1;;", encoded.Text)
	})

	t.Run("validation error passes through unchanged", func(t *testing.T) {
		_, err := svc.GeneratePayload(ctx, models.GenerateRequest{
			Kind: models.WiFi,
			WiFi: &models.WiFiFields{Password: "secret1", Encryption: models.EncryptionWPA},
		})

		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "ssid", vErr.Field)
		assert.Equal(t, models.ReasonMissing, vErr.Reason)
	})

	t.Run("missing field record", func(t *testing.T) {
		_, err := svc.GeneratePayload(ctx, models.GenerateRequest{Kind: models.WiFi})

		require.ErrorIs(t, err, ErrNoFieldRecord)
	})

	t.Run("record for wrong kind", func(t *testing.T) {
		// a geo record on a wifi request never reaches the encoder
		_, err := svc.GeneratePayload(ctx, models.GenerateRequest{
			Kind: models.WiFi,
			Geo:  &models.GeoFields{},
		})

		require.ErrorIs(t, err, ErrNoFieldRecord)
	})
}

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	req := models.GenerateRequest{
		Kind: models.GenericText,
		Text: &models.TextFields{Text: "hello"},
	}

	t.Run("renders png", func(t *testing.T) {
		svc := newTestQRService(0)

		png, err := svc.GenerateImage(ctx, req)

		require.NoError(t, err)
		require.Greater(t, len(png), len(pngMagic))
		assert.Equal(t, pngMagic, png[:len(pngMagic)])
	})

	t.Run("zero size uses configured default", func(t *testing.T) {
		svc := newTestQRService(64)

		png, err := svc.GenerateImage(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("validation error skips rendering", func(t *testing.T) {
		svc := newTestQRService(0)

		_, err := svc.GenerateImage(ctx, models.GenerateRequest{
			Kind: models.GenericText,
			Text: &models.TextFields{},
		})

		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "text", vErr.Field)
	})
}

func TestKinds(t *testing.T) {
	svc := newTestQRService(0)

	kinds := svc.Kinds(context.Background())

	assert.Equal(t, []string{"wifi", "vcard", "email", "whatsapp", "sms", "social_link", "text", "geo"}, kinds)
}
