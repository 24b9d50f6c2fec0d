package handler

import (
	"net/http"
	"strconv"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DeleteURL обрабатывает DELETE /url/delete/{id} и возвращает удалённую запись
func (h *Handler) DeleteURL(w http.ResponseWriter, req *http.Request) {
	rawID := chi.URLParam(req, "id")

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.logger.Debug("invalid mapping id", zap.String("id", rawID), zap.Error(err))
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	removed, err := h.usecase.DeleteURL(req.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewMappingResponse(removed))
}
