package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/url-alias/internal/config"
	"github.com/avc-dev/url-alias/internal/model"
	"github.com/avc-dev/url-alias/internal/store"
)

// AliasPlaceholder значение по умолчанию из формы API, означает "алиас не задан"
const AliasPlaceholder = "string"

// reservedAliases коды, совпадающие с фиксированными маршрутами GET.
// Запись с таким кодом нельзя было бы открыть по короткой ссылке
var reservedAliases = map[model.Code]struct{}{
	"ping": {},
}

// URLService выбирает короткий код для длинного адреса и сохраняет запись
type URLService struct {
	repo          CodeRepository
	codeGenerator Generator
	cfg           *config.Config
}

// NewURLService создает новый экземпляр URLService
func NewURLService(repo CodeRepository, cfg *config.Config) *URLService {
	return &URLService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(cfg.CodeLength),
		cfg:           cfg,
	}
}

// CreateMapping создает запись для originalURL.
// Если передан customAlias, он используется как код при условии, что он свободен,
// иначе генерируется случайный код. Вставка в хранилище выполняется ровно один раз
func (s *URLService) CreateMapping(ctx context.Context, originalURL model.URL, customAlias string) (model.URLMapping, error) {
	var (
		code model.Code
		err  error
	)

	if hasCustomAlias(customAlias) {
		code, err = s.reserveAlias(ctx, model.Code(customAlias))
	} else {
		code, err = s.generateUniqueCode(ctx)
	}
	if err != nil {
		return model.URLMapping{}, err
	}

	created, err := s.repo.CreateMapping(ctx, model.URLMapping{
		LongURL:  originalURL,
		ShortURL: code,
	})
	if err != nil {
		// Код могли занять между проверкой и вставкой
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.URLMapping{}, ErrAliasConflict
		}
		return model.URLMapping{}, err
	}

	return created, nil
}

func hasCustomAlias(alias string) bool {
	return alias != "" && alias != AliasPlaceholder
}

// reserveAlias проверяет, что запрошенный алиас свободен
func (s *URLService) reserveAlias(ctx context.Context, alias model.Code) (model.Code, error) {
	if _, reserved := reservedAliases[alias]; reserved {
		return "", ErrAliasConflict
	}

	taken, err := s.repo.IsCodeTaken(ctx, alias)
	if err != nil {
		return "", err
	}
	if taken {
		return "", ErrAliasConflict
	}

	return alias, nil
}

// generateUniqueCode генерирует код, пока не найдёт свободный, но не более Retry.MaxAttempts раз
func (s *URLService) generateUniqueCode(ctx context.Context) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()
		if _, reserved := reservedAliases[code]; reserved {
			continue
		}

		taken, err := s.repo.IsCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrGenerationExhausted)
}
