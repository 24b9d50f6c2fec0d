package service

import (
	"context"

	"github.com/avc-dev/url-alias/internal/model"
)

//go:generate mockery --name CodeRepository
//go:generate mockery --name Generator

// CodeRepository определяет методы хранилища, нужные для выдачи кодов
type CodeRepository interface {
	// IsCodeTaken сообщает, занят ли код
	IsCodeTaken(ctx context.Context, code model.Code) (bool, error)
	// CreateMapping сохраняет запись
	// Возвращает store.ErrAlreadyExists если код уже существует
	CreateMapping(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error)
}

// Generator генерирует случайные коды
type Generator interface {
	GenerateCode() model.Code
}
