package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/internal/payload"
	"github.com/dkovalev/qr-mint/internal/service"
	"github.com/dkovalev/qr-mint/models"
)

var errorStatusMap = map[error]int{
	service.ErrNoFieldRecord:         http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	payload.ErrUnknownKind:  http.StatusBadRequest,
	payload.ErrKindMismatch: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps service errors onto HTTP responses. Validation failures
// travel as a JSON body so the client can restore the typed error; everything
// else degrades to a plain-text status message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(vErr)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	http.Error(w, err.Error(), status)
}
