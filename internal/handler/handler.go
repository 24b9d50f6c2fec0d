package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/url-alias/internal/config/db"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/service"
	"github.com/avc-dev/url-alias/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name URLUsecase

// URLUsecase определяет операции, которые вызывает HTTP слой
type URLUsecase interface {
	CreateShortURL(ctx context.Context, urlString string, customAlias string) (model.URLMapping, error)
	GetOriginalURL(ctx context.Context, code string) (string, error)
	GetAllURLs(ctx context.Context) ([]model.MappingResponse, error)
	DeleteURL(ctx context.Context, id int64) (model.URLMapping, error)
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
	db      db.Database
}

// New создает новый Handler. database может быть nil, если PostgreSQL не используется
func New(usecase URLUsecase, logger *zap.Logger, database db.Database) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		db:      database,
	}
}

// handleError переводит ошибки usecase в HTTP статусы.
// Тело ответа содержит текст ошибки
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrURLNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, service.ErrAliasConflict):
		http.Error(w, service.ErrAliasConflict.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeJSON пишет ответ в формате JSON
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
