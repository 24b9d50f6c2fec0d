package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/url-alias/internal/config"
	"github.com/avc-dev/url-alias/internal/config/db"
	"github.com/avc-dev/url-alias/internal/handler"
	"github.com/avc-dev/url-alias/internal/usecase"
	"go.uber.org/zap"
)

// App представляет приложение url-alias
type App struct {
	config  *config.Config
	logger  *zap.Logger
	usecase *usecase.URLUsecase
	handler *handler.Handler
	dbPool  db.Database
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		usecase: deps.usecase,
		handler: deps.handler,
		dbPool:  deps.database,
	}, nil
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("Database connection closed")
	}
	_ = a.logger.Sync()
}

// Run запускает приложение и блокируется до SIGINT или SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.serve(ctx)
}
