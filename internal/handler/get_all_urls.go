package handler

import (
	"net/http"
)

// GetAllURLs возвращает все записи. Если записей нет, отвечает 204 No Content
func (h *Handler) GetAllURLs(w http.ResponseWriter, req *http.Request) {
	urls, err := h.usecase.GetAllURLs(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	if len(urls) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, urls)
}
