package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoll/internal/apperror"
	"github.com/rocketscienceinc/tictactoll/internal/config"
	"github.com/rocketscienceinc/tictactoll/internal/entity"
	"github.com/rocketscienceinc/tictactoll/internal/tictactoe"
)

type GameState int8

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "menu"
	}
}

type boardRegistry interface {
	Insert(board *entity.Board) error
	Remove(id entity.BoardID) bool
	Tick(now time.Duration) []*entity.Board
	HitTest(x, y float64) (*entity.Board, bool)
	Snapshot() []entity.BoardView
	Len() int
	Clear()
}

type randSource interface {
	IntN(n int) int
}

// GameManager is the session: it owns the registry, the lives and the
// speed ramp. It is driven by a single frame loop and is not safe for
// concurrent use.
type GameManager struct {
	logger   *slog.Logger
	conf     config.Game
	window   config.Window
	registry boardRegistry
	rng      randSource

	state     GameState
	running   bool
	lives     int
	score     int
	speedMod  float64
	runStart  time.Duration
	lastSpawn time.Duration
}

func NewGameManager(logger *slog.Logger, conf *config.Config, registry boardRegistry, rng randSource) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		conf:     conf.Game,
		window:   conf.Window,
		registry: registry,
		rng:      rng,

		state:    StateMenu,
		running:  true,
		lives:    conf.Game.StartingLives,
		speedMod: 1,
	}
}

// Start leaves the menu (or a finished run) and spawns the first board.
func (that *GameManager) Start(now time.Duration) {
	if that.state == StatePlaying {
		return
	}

	that.registry.Clear()
	that.state = StatePlaying
	that.lives = that.conf.StartingLives
	that.score = 0
	that.speedMod = 1
	that.runStart = now

	that.logger.Info("game started", "lives", that.lives)

	that.spawnBoard(now)
}

// Update runs the per-frame state transition: spawn when the timer is
// ready, then expire boards that ran out of time.
func (that *GameManager) Update(now time.Duration) {
	if that.state != StatePlaying {
		return
	}

	if now-that.lastSpawn > that.conf.SpawnInterval {
		that.spawnBoard(now)
	}

	for _, board := range that.registry.Tick(now) {
		that.loseLife(board, "expired")
	}
}

// HandleClick resolves the board under the pointer, places the player's
// mark in the cell under it and lets the opponent answer.
func (that *GameManager) HandleClick(now time.Duration, x, y float64) (tictactoe.Result, error) {
	switch that.state {
	case StateMenu:
		that.Start(now)
		return tictactoe.Continue, nil
	case StateGameOver:
		return tictactoe.Continue, apperror.ErrGameNotRunning
	}

	board, ok := that.registry.HitTest(x, y)
	if !ok {
		return tictactoe.Continue, fmt.Errorf("%w: at %.0f,%.0f", apperror.ErrBoardNotFound, x, y)
	}

	cell, ok := board.CellAt(x, y)
	if !ok {
		return tictactoe.Continue, fmt.Errorf("%w: at %.0f,%.0f", apperror.ErrBoardNotFound, x, y)
	}

	if err := board.State.PlayerMove(cell); err != nil {
		return tictactoe.Continue, fmt.Errorf("failed to place mark: %w", err)
	}

	result, err := tictactoe.EvaluateAndAdvance(board.State, that.rng)
	if err != nil {
		return tictactoe.Continue, fmt.Errorf("failed to evaluate board %s: %w", board.ID, err)
	}

	switch result {
	case tictactoe.Win:
		that.registry.Remove(board.ID)
		that.score++
		that.logger.Info("board won", "board", board.ID, "score", that.score)
	case tictactoe.Loss:
		that.loseLife(board, "lost")
	case tictactoe.Continue:
	}

	return result, nil
}

// HandleKey starts a run from the menu or after a game over.
func (that *GameManager) HandleKey(now time.Duration) {
	if that.state != StatePlaying {
		that.Start(now)
	}
}

// Stop asks the frame loop to exit at the top of its next iteration.
func (that *GameManager) Stop() {
	that.running = false
}

func (that *GameManager) Running() bool {
	return that.running
}

func (that *GameManager) State() GameState {
	return that.state
}

func (that *GameManager) Lives() int {
	return that.lives
}

func (that *GameManager) Score() int {
	return that.score
}

func (that *GameManager) SpeedMod() float64 {
	return that.speedMod
}

// Boards returns read-only views, newest first.
func (that *GameManager) Boards() []entity.BoardView {
	return that.registry.Snapshot()
}

func (that *GameManager) spawnBoard(now time.Duration) {
	log := that.logger.With("method", "spawnBoard")

	size := that.conf.BoardSize
	center := entity.Point{
		X: float64(that.rng.IntN(int(float64(that.window.Width)-size))) + size/2,
		Y: float64(that.rng.IntN(int(float64(that.window.Height)-size))) + size/2,
	}

	board := entity.NewBoard(entity.NewLifecycle(now, that.conf.BoardDuration, that.speedMod, center, size))
	if err := that.registry.Insert(board); err != nil {
		log.Error("failed to insert board", "error", err)
		return
	}

	that.lastSpawn = now
	that.speedMod = float64(now-that.runStart+that.conf.SpeedRamping) / float64(that.conf.SpeedRamping)

	log.Debug("board spawned",
		"board", board.ID,
		"x", center.X,
		"y", center.Y,
		"duration", board.Lifecycle.EffectiveDuration(),
		"boards", that.registry.Len(),
	)
}

func (that *GameManager) loseLife(board *entity.Board, reason string) {
	that.registry.Remove(board.ID)

	// boards expiring in the same tick after the last life are free
	if that.state == StateGameOver {
		return
	}

	that.lives--

	that.logger.Info("board "+reason, "board", board.ID, "lives", that.lives)

	if that.lives <= 0 {
		that.state = StateGameOver
		that.logger.Info("game over", "score", that.score)
	}
}
