package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/store"
	"go.uber.org/zap"
)

// DeleteURL удаляет запись по id и возвращает удалённую запись.
// Если записи нет, возвращается ErrURLNotFound и хранилище не изменяется
func (u *URLUsecase) DeleteURL(ctx context.Context, id int64) (model.URLMapping, error) {
	mapping, err := u.repo.GetMappingByID(ctx, model.MappingID(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.URLMapping{}, fmt.Errorf("%w: %w", ErrURLNotFound, err)
		}
		u.logger.Error("failed to get mapping by id", zap.Int64("id", id), zap.Error(err))
		return model.URLMapping{}, err
	}

	removed, err := u.repo.DeleteMapping(ctx, mapping)
	if err != nil {
		u.logger.Error("failed to delete mapping", zap.Int64("id", id), zap.Error(err))
		return model.URLMapping{}, err
	}

	u.logger.Info("mapping deleted",
		zap.Int64("id", id),
		zap.String("code", removed.ShortURL.String()),
	)

	return removed, nil
}
