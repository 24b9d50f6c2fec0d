package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/url-alias/internal/config"
	"github.com/avc-dev/url-alias/internal/config/db"
	"github.com/avc-dev/url-alias/internal/handler"
	"github.com/avc-dev/url-alias/internal/migrations"
	"github.com/avc-dev/url-alias/internal/repository"
	"github.com/avc-dev/url-alias/internal/service"
	"github.com/avc-dev/url-alias/internal/store"
	"github.com/avc-dev/url-alias/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	usecase  *usecase.URLUsecase
	handler  *handler.Handler
	database db.Database
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return wire(cfg, logger, storage, database), nil
}

// wire собирает слои поверх выбранного хранилища
func wire(cfg *config.Config, logger *zap.Logger, storage repository.Store, database db.Database) *dependencies {
	repo := repository.New(storage)
	urlService := service.NewURLService(repo, cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, logger)

	h := handler.New(urlUsecase, logger, database)

	return &dependencies{
		usecase:  urlUsecase,
		handler:  h,
		database: database,
	}
}

// initStorage выбирает хранилище: PostgreSQL, затем файл, затем память
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
			database.Close()
			return nil, nil, err
		}

		dbStore, err := store.NewDatabaseStore(database, cfg.MatchMode)
		if err != nil {
			database.Close()
			return nil, nil, err
		}

		logger.Info("Using database storage", zap.String("match_mode", cfg.MatchMode.String()))
		return dbStore, database, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath, cfg.MatchMode)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage",
			zap.String("path", cfg.FileStoragePath),
			zap.String("match_mode", cfg.MatchMode.String()),
		)
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage", zap.String("match_mode", cfg.MatchMode.String()))
	return store.NewStore(cfg.MatchMode), nil, nil
}
