package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParam добавляет параметр маршрута chi в запрос
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
