package service

import (
	"github.com/dkovalev/qr-mint/internal/adapter"
	"github.com/dkovalev/qr-mint/internal/config"
	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/internal/qr"
	"github.com/dkovalev/qr-mint/internal/store"
)

type ClientServices struct {
	GenerateService ClientGenerateService
	RenderService   ClientRenderService
	HistoryService  ClientHistoryService
	ShareService    ClientShareService
	PruneJob        ClientPruneJob
}

// NewClientServices wires the client service layer. When cfg.Adapter carries
// a server address, generation is delegated to that server through remote;
// callers pass nil to force local generation.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, remote adapter.RemoteGenerator, log *logger.Logger) *ClientServices {
	renderSvc := NewClientRenderService(qr.NewRenderer(), cfg.Render.PNGSize, log)
	historySvc := NewClientHistoryService(storages.HistoryRepository, cfg.Workers.HistoryLimit, log)

	return &ClientServices{
		GenerateService: NewClientGenerateService(payload.NewGenerator(), remote, log),
		RenderService:   renderSvc,
		HistoryService:  historySvc,
		ShareService:    NewClientShareService(renderSvc, cfg.Storage.ExportsDir, log),
		PruneJob:        NewClientPruneJob(historySvc),
	}
}
