package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/store"
	"go.uber.org/zap"
)

// CreateShortURL возвращает запись для оригинального URL.
// Если адрес уже сохранён, возвращается существующая запись, иначе создается новая
// с пользовательским алиасом или сгенерированным кодом
func (u *URLUsecase) CreateShortURL(ctx context.Context, urlString string, customAlias string) (model.URLMapping, error) {
	urlString = strings.TrimSpace(urlString)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return model.URLMapping{}, ErrEmptyURL
	}

	originalURL := model.URL(urlString)

	existing, err := u.repo.GetMappingByLong(ctx, originalURL)
	if err == nil {
		u.logger.Debug("URL already shortened",
			zap.String("original_url", urlString),
			zap.String("code", existing.ShortURL.String()),
		)
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		u.logger.Error("failed to look up URL",
			zap.String("original_url", urlString),
			zap.Error(err),
		)
		return model.URLMapping{}, err
	}

	created, err := u.service.CreateMapping(ctx, originalURL, customAlias)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", urlString),
			zap.String("custom_alias", customAlias),
			zap.Error(err),
		)
		return model.URLMapping{}, err
	}

	u.logger.Info("short URL created",
		zap.Int64("id", int64(created.ID)),
		zap.String("code", created.ShortURL.String()),
	)

	return created, nil
}
