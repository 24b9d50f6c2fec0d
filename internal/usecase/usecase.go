package usecase

import (
	"context"

	"github.com/avc-dev/url-alias/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name URLRepository
//go:generate mockery --name URLService

// URLRepository определяет интерфейс для чтения и удаления записей
type URLRepository interface {
	GetMappingByLong(ctx context.Context, url model.URL) (model.URLMapping, error)
	GetMappingByShort(ctx context.Context, code model.Code) (model.URLMapping, error)
	GetMappingByID(ctx context.Context, id model.MappingID) (model.URLMapping, error)
	ListMappings(ctx context.Context) ([]model.URLMapping, error)
	DeleteMapping(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error)
}

// URLService определяет интерфейс сервиса выдачи коротких кодов
type URLService interface {
	CreateMapping(ctx context.Context, originalURL model.URL, customAlias string) (model.URLMapping, error)
}

// URLUsecase содержит бизнес-логику для работы с URL
type URLUsecase struct {
	repo    URLRepository
	service URLService
	logger  *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(repo URLRepository, service URLService, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		repo:    repo,
		service: service,
		logger:  logger,
	}
}
