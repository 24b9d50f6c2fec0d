package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/url-alias/internal/model"
)

type Store interface {
	Insert(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error)
	Delete(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error)
	List(ctx context.Context) ([]model.URLMapping, error)
	FindByID(ctx context.Context, id model.MappingID) (model.URLMapping, error)
	ExistsByShort(ctx context.Context, code model.Code) (bool, error)
	FindByLong(ctx context.Context, url model.URL) (model.URLMapping, error)
	FindByShort(ctx context.Context, code model.Code) (model.URLMapping, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r Repository) CreateMapping(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	created, err := r.underlying.Insert(ctx, mapping)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to create mapping: %w", err)
	}
	return created, nil
}

func (r Repository) DeleteMapping(ctx context.Context, mapping model.URLMapping) (model.URLMapping, error) {
	removed, err := r.underlying.Delete(ctx, mapping)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to delete mapping: %w", err)
	}
	return removed, nil
}

func (r Repository) ListMappings(ctx context.Context) ([]model.URLMapping, error) {
	mappings, err := r.underlying.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}

func (r Repository) GetMappingByID(ctx context.Context, id model.MappingID) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByID(ctx, id)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get mapping by id: %w", err)
	}
	return mapping, nil
}

func (r Repository) GetMappingByLong(ctx context.Context, url model.URL) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByLong(ctx, url)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get mapping by URL: %w", err)
	}
	return mapping, nil
}

func (r Repository) GetMappingByShort(ctx context.Context, code model.Code) (model.URLMapping, error) {
	mapping, err := r.underlying.FindByShort(ctx, code)
	if err != nil {
		return model.URLMapping{}, fmt.Errorf("failed to get mapping by code: %w", err)
	}
	return mapping, nil
}
