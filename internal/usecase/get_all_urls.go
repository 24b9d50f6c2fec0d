package usecase

import (
	"context"

	"github.com/avc-dev/url-alias/internal/model"
	"go.uber.org/zap"
)

// GetAllURLs возвращает все записи в порядке, который определяет хранилище.
// Пустой результат не является ошибкой
func (u *URLUsecase) GetAllURLs(ctx context.Context) ([]model.MappingResponse, error) {
	mappings, err := u.repo.ListMappings(ctx)
	if err != nil {
		u.logger.Error("failed to list mappings", zap.Error(err))
		return nil, err
	}

	responses := make([]model.MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		responses = append(responses, model.NewMappingResponse(m))
	}

	return responses, nil
}
