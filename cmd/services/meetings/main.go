package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	config "github.com/meetingmind/backend/config/meetings"
	"github.com/meetingmind/backend/pkg/logger"
	"github.com/meetingmind/backend/services/meetings/server"
	"github.com/meetingmind/backend/services/meetings/storage"
	"github.com/meetingmind/backend/services/meetings/storage/postgres/ent"
	"github.com/meetingmind/backend/services/meetings/usecase"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})

	cfg := config.MustLoad()

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	entPsqlConnect := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Name,
		cfg.Database.Password,
		cfg.Database.SSLMode,
	)
	client, err := ent.Open("postgres", entPsqlConnect)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}

	stg := storage.New(client)
	usc := usecase.New(stg)

	srv := server.NewServerOptions(usc)
	grpcServer, err := srv.NewServer()
	if err != nil {
		return fmt.Errorf("failed to create grpc server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	address := fmt.Sprintf(":%d", cfg.Port)
	grpcListener, err := net.Listen("tcp", address)
	if err != nil {
		log.Error("failed to listen on grpc port", slog.String("error", err.Error()))
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	go func() {
		serverErrors <- grpcServer.Serve(grpcListener)
	}()
	log.Info("meetings service started", slog.String("address", address))

	select {
	case err := <-serverErrors:
		log.Info("grpc server has closed")
		return fmt.Errorf("grpc server has closed: %w", err)
	case sig := <-shutdown:
		log.Info("start shutdown", slog.String("signal", sig.String()))
		grpcServer.GracefulStop()
	case <-ctx.Done():
		log.Info("closing grpc server due to context cancellation")
		grpcServer.GracefulStop()
	}

	return nil
}
