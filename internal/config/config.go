package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Window   Window `yaml:"window"`
}

// Game holds the tuning of the board spawner. A board lives for
// BoardDuration divided by the speed modifier captured when it spawned;
// the modifier grows as (runTime + SpeedRamping) / SpeedRamping.
type Game struct {
	BoardDuration time.Duration `yaml:"board-duration" env:"GAME_BOARD_DURATION" env-default:"5s"`
	BoardSize     float64       `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"300"`
	SpawnInterval time.Duration `yaml:"spawn-interval" env:"GAME_SPAWN_INTERVAL" env-default:"4s"`
	SpeedRamping  time.Duration `yaml:"speed-ramping" env:"GAME_SPEED_RAMPING" env-default:"30s"`
	StartingLives int           `yaml:"starting-lives" env:"GAME_STARTING_LIVES" env-default:"5"`
	Seed          uint64        `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

type Window struct {
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"800"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600"`
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic-Tac-Toll"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch {
	case that.Game.BoardDuration <= 0:
		return fmt.Errorf("%w: board-duration must be positive", ErrInvalidConfig)
	case that.Game.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn-interval must be positive", ErrInvalidConfig)
	case that.Game.SpeedRamping <= 0:
		return fmt.Errorf("%w: speed-ramping must be positive", ErrInvalidConfig)
	case that.Game.StartingLives <= 0:
		return fmt.Errorf("%w: starting-lives must be positive", ErrInvalidConfig)
	case that.Game.BoardSize <= 0:
		return fmt.Errorf("%w: board-size must be positive", ErrInvalidConfig)
	case float64(that.Window.Width)-that.Game.BoardSize < 1 || float64(that.Window.Height)-that.Game.BoardSize < 1:
		return fmt.Errorf("%w: window %dx%d cannot fit board-size %.0f",
			ErrInvalidConfig, that.Window.Width, that.Window.Height, that.Game.BoardSize)
	}

	return nil
}
