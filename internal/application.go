package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/catanview/internal/catanapi"
	"github.com/rocketscienceinc/catanview/internal/config"
	"github.com/rocketscienceinc/catanview/internal/render"
	"github.com/rocketscienceinc/catanview/internal/repository"
	"github.com/rocketscienceinc/catanview/internal/repository/storage"
	"github.com/rocketscienceinc/catanview/internal/usecase"
	"github.com/rocketscienceinc/catanview/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	snapshotRepo := repository.NewSnapshotRepository(redisStorage.Connection, conf.Cache.TTL)
	source := catanapi.New(logger, conf.CatanAPI.BaseURL, conf.CatanAPI.Timeout)
	renderer := render.New(render.Options{
		CanvasWidth:  conf.Board.CanvasSize,
		CanvasHeight: conf.Board.CanvasSize,
		TileSize:     conf.Board.TileSize,
	})
	viewer := usecase.NewMatchViewer(logger, source, snapshotRepo, renderer)

	handlers := rest.NewHandlers(logger, viewer, int(conf.Board.CanvasSize))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "catan_api", conf.CatanAPI.BaseURL)
	if err = rest.Start(ctx, logger, conf.HTTPPort, rest.NewRouter(handlers)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
