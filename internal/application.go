package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoll/internal/config"
	"github.com/rocketscienceinc/tictactoll/internal/repository"
	"github.com/rocketscienceinc/tictactoll/internal/usecase"
	"github.com/rocketscienceinc/tictactoll/transport/arcade"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log.Info("Starting game", "seed", seed, "width", conf.Window.Width, "height", conf.Window.Height)

	rng := rand.New(rand.NewPCG(seed, seed))
	boardRegistry := repository.NewBoardRegistry()
	gameManager := usecase.NewGameManager(logger, conf, boardRegistry, rng)

	game := arcade.New(ctx, logger, gameManager, conf.Window, conf.LogLevel == "debug")
	if err := game.Run(); err != nil {
		return fmt.Errorf("arcade error: %w", err)
	}

	log.Info("Game closed", "score", gameManager.Score())

	return nil
}
