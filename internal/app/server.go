package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/avc-dev/url-alias/internal/grpcserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const readHeaderTimeout = 5 * time.Second

// serve запускает HTTP и, если задан адрес, gRPC сервер.
// При отмене ctx серверы останавливаются с таймаутом ShutdownTimeout
func (a *App) serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           newRouter(a.handler, a.logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var (
		grpcServer   *grpc.Server
		grpcListener net.Listener
	)
	if a.config.GRPCEnabled() {
		listener, err := net.Listen("tcp", a.config.GRPCAddress.String())
		if err != nil {
			return fmt.Errorf("failed to listen gRPC address: %w", err)
		}
		grpcListener = listener
		grpcServer = a.newGRPCServer()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting HTTP server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			a.logger.Info("Starting gRPC server", zap.String("address", grpcListener.Addr().String()))
			if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("gRPC server failed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if grpcServer != nil {
			stopped := make(chan struct{})
			go func() {
				grpcServer.GracefulStop()
				close(stopped)
			}()
			select {
			case <-stopped:
			case <-shutdownCtx.Done():
				grpcServer.Stop()
			}
		}

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	a.logger.Info("Servers stopped")
	return nil
}

// newGRPCServer собирает gRPC сервер с сервисом записей, health и reflection
func (a *App) newGRPCServer() *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.LoggingInterceptor(a.logger)))

	grpcserver.New(a.usecase, a.logger).Register(server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcserver.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	reflection.Register(server)

	return server
}
