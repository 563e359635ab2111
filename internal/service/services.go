package service

import (
	"github.com/dkovalev/qr-mint/internal/config"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/models"
)

// Services groups the server-side services consumed by the HTTP handlers.
type Services struct {
	QRService      QRService
	AppInfoService AppInfoService
}

// NewServices wires the payload generator and QR renderer into the service
// layer using the merged configuration.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		QRService:      NewQRService(payload.NewGenerator(), qr.NewRenderer(), cfg.Render.PNGSize, log),
		AppInfoService: appInfoSvc,
	}, nil
}
