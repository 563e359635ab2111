package http

import (
	"encoding/json"
	"net/http"

	"github.com/dkovalev/qr-mint/models"
)

// generate validates the submitted field records and returns the encoded
// payload as JSON. A failed field comes back as a 400 with the validation
// error body so the client can attach it to the offending form field.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cannot decode request body", http.StatusBadRequest)
		return
	}

	encoded, err := h.services.QRService.GeneratePayload(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(encoded)
}

// image behaves like generate but responds with the rendered PNG bytes.
func (h *Handler) image(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "cannot decode request body", http.StatusBadRequest)
		return
	}

	png, err := h.services.QRService.GenerateImage(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// kinds lists the wire names of all supported content kinds.
func (h *Handler) kinds(w http.ResponseWriter, r *http.Request) {
	names := h.services.QRService.Kinds(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}
