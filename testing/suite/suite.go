package suite

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoll/internal/config"
)

const (
	seedHigh = 0x5eed
	seedLow  = 0x7011
)

// Suite bundles what a session test needs: a logger, a config with the
// shipped defaults and an RNG that replays the same sequence every run.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
	Rand   *rand.Rand
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Suite{
		T:      t,
		Logger: logger,
		Config: DefaultConfig(),
		Rand:   rand.New(rand.NewPCG(seedHigh, seedLow)),
	}
}

// DefaultConfig mirrors the env-default tags of config.Config.
func DefaultConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Game: config.Game{
			BoardDuration: 5 * time.Second,
			BoardSize:     300,
			SpawnInterval: 4 * time.Second,
			SpeedRamping:  30 * time.Second,
			StartingLives: 5,
		},
		Window: config.Window{
			Width:  800,
			Height: 600,
			Title:  "Tic-Tac-Toll",
		},
	}
}
