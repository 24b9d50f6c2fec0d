package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/url-alias/internal/model"
)

// IsCodeTaken проверяет, занят ли код в хранилище
// Возвращает ошибку только в случае проблем с хранилищем
func (r Repository) IsCodeTaken(ctx context.Context, code model.Code) (bool, error) {
	exists, err := r.underlying.ExistsByShort(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return exists, nil
}
