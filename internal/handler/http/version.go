package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buildInfo)
}
