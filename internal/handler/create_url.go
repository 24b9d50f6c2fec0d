package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/url-alias/internal/model"
	"go.uber.org/zap"
)

// CreateURL обрабатывает POST /url/create
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	var request model.CreateMappingRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mapping, err := h.usecase.CreateShortURL(req.Context(), request.OriginalURL, request.Alias())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewMappingResponse(mapping))
}
