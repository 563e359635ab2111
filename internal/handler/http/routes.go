package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Route("/qr", func(r chi.Router) {
			r.Post("/generate", h.generate)
			r.Post("/image", h.image)
			r.Get("/kinds", h.kinds)
		})

		r.Get("/version/", h.getServerVersion)
	})

	return router
}
