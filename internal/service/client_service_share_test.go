package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
)

func TestSavePNG(t *testing.T) {
	ctx := context.Background()
	render := NewClientRenderService(qr.NewRenderer(), 0, logger.Nop())

	encoded := models.EncodedPayload{
		Kind: models.WiFi,
		Text: "WIFI:T:WPA;S:Home;P:secret1;;",
	}

	t.Run("writes png into exports dir", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewClientShareService(render, dir, logger.Nop())

		path, err := svc.SavePNG(ctx, encoded, 128)

		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.Contains(t, filepath.Base(path), "wifi-")
		assert.Contains(t, filepath.Base(path), ".png")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
	})

	t.Run("creates missing exports dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "exports")
		svc := NewClientShareService(render, dir, logger.Nop())

		path, err := svc.SavePNG(ctx, encoded, 0)

		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		svc := NewClientShareService(render, t.TempDir(), logger.Nop())

		_, err := svc.SavePNG(ctx, models.EncodedPayload{Kind: models.WiFi}, 128)

		require.ErrorIs(t, err, ErrEmptyPayload)
	})
}

func TestCopyPayload_EmptyPayload(t *testing.T) {
	render := NewClientRenderService(qr.NewRenderer(), 0, logger.Nop())
	svc := NewClientShareService(render, t.TempDir(), logger.Nop())

	err := svc.CopyPayload(models.EncodedPayload{})

	require.ErrorIs(t, err, ErrEmptyPayload)
}

func timeFixture() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		kind models.ContentKind
		want string
	}{
		{name: "wifi", kind: models.WiFi, want: "wifi-"},
		{name: "social link", kind: models.SocialLink, want: "social_link-"},
		{name: "unknown kind", kind: models.ContentKind(99), want: "unknown-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := exportFileName(tt.kind, timeFixture())
			assert.Contains(t, name, tt.want)
			assert.Contains(t, name, "20260801-120000")
			assert.Contains(t, name, ".png")
		})
	}
}
