package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/store"
	"go.uber.org/zap"
)

// GetOriginalURL получает оригинальный URL по короткому коду
func (u *URLUsecase) GetOriginalURL(ctx context.Context, code string) (string, error) {
	mapping, err := u.FindByShort(ctx, code)
	if err != nil {
		return "", err
	}

	return mapping.LongURL.String(), nil
}

// FindByShort ищет запись по короткому коду
func (u *URLUsecase) FindByShort(ctx context.Context, code string) (model.URLMapping, error) {
	mapping, err := u.repo.GetMappingByShort(ctx, model.Code(code))
	if err != nil {
		return model.URLMapping{}, u.lookupError("code", code, err)
	}

	return mapping, nil
}

// FindByLong ищет запись по оригинальному URL
func (u *URLUsecase) FindByLong(ctx context.Context, longURL string) (model.URLMapping, error) {
	mapping, err := u.repo.GetMappingByLong(ctx, model.URL(longURL))
	if err != nil {
		return model.URLMapping{}, u.lookupError("original_url", longURL, err)
	}

	return mapping, nil
}

// lookupError переводит отсутствие записи в ErrURLNotFound, остальные ошибки логирует
func (u *URLUsecase) lookupError(field, value string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrURLNotFound, err)
	}

	u.logger.Error("failed to look up mapping",
		zap.String(field, value),
		zap.Error(err),
	)
	return err
}
