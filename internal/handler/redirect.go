package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect перенаправляет с короткого кода на оригинальный URL
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortUrl")

	originalURL, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}
