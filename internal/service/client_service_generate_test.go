package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/mock"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/models"
)

func TestClientGenerate_Local(t *testing.T) {
	ctx := context.Background()
	svc := NewClientGenerateService(payload.NewGenerator(), nil, logger.Nop())

	t.Run("remote is disabled", func(t *testing.T) {
		assert.False(t, svc.RemoteEnabled())
	})

	t.Run("sms request encodes locally", func(t *testing.T) {
		encoded, err := svc.Generate(ctx, models.GenerateRequest{
			Kind:  models.SMS,
			Phone: &models.PhoneMessageFields{CallingCode: "44", LocalNumber: "7911 123456"},
		})

		require.NoError(t, err)
		assert.Equal(t, "SMSTO:447911123456:", encoded.Text)
	})

	t.Run("validation error surfaces unchanged", func(t *testing.T) {
		_, err := svc.Generate(ctx, models.GenerateRequest{
			Kind: models.Geo,
			Geo:  &models.GeoFields{},
		})

		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "latitude", vErr.Field)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.Generate(ctx, models.GenerateRequest{Kind: models.VCard})

		require.ErrorIs(t, err, ErrNoFieldRecord)
	})
}

func TestClientGenerate_Remote(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock.NewMockRemoteGenerator(ctrl)
	svc := NewClientGenerateService(payload.NewGenerator(), remote, logger.Nop())

	req := models.GenerateRequest{
		Kind: models.SocialLink,
		SocialLink: &models.SocialLinkFields{
			URL: "https://instagram.com/someuser",
		},
	}

	t.Run("remote is enabled", func(t *testing.T) {
		assert.True(t, svc.RemoteEnabled())
	})

	t.Run("delegates to remote backend", func(t *testing.T) {
		want := models.EncodedPayload{Kind: models.SocialLink, Text: "https://instagram.com/someuser"}
		remote.EXPECT().Generate(ctx, req).Return(want, nil)

		encoded, err := svc.Generate(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, want, encoded)
	})

	t.Run("remote validation error surfaces unchanged", func(t *testing.T) {
		remote.EXPECT().Generate(ctx, req).
			Return(models.EncodedPayload{}, models.NewMissingFieldError("url"))

		_, err := svc.Generate(ctx, req)

		var vErr *models.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "url", vErr.Field)
	})
}
