package arcade

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoll/internal/apperror"
	"github.com/rocketscienceinc/tictactoll/internal/config"
	"github.com/rocketscienceinc/tictactoll/internal/entity"
	"github.com/rocketscienceinc/tictactoll/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoll/internal/usecase"
)

const (
	lineWidth   = 3
	markPadding = 0.2
	hudMargin   = 10
	hudLineStep = 18
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

type gameSession interface {
	Update(now time.Duration)
	HandleClick(now time.Duration, x, y float64) (tictactoe.Result, error)
	HandleKey(now time.Duration)
	Stop()
	Running() bool
	State() usecase.GameState
	Lives() int
	Score() int
	Boards() []entity.BoardView
}

// Game adapts a session to ebiten's frame loop.
type Game struct {
	ctx     context.Context
	logger  *slog.Logger
	session gameSession
	window  config.Window
	debug   bool

	input Input
	clock func() time.Duration
}

func New(ctx context.Context, logger *slog.Logger, session gameSession, window config.Window, debug bool) *Game {
	started := time.Now()

	return &Game{
		ctx:     ctx,
		logger:  logger.With("component", "arcade"),
		session: session,
		window:  window,
		debug:   debug,

		input: &ebitenInput{},
		clock: func() time.Duration {
			return time.Since(started)
		},
	}
}

// Run opens the window and blocks until the session stops.
func (that *Game) Run() error {
	ebiten.SetWindowSize(that.window.Width, that.window.Height)
	ebiten.SetWindowTitle(that.window.Title)

	if err := ebiten.RunGame(that); err != nil {
		return fmt.Errorf("failed to run game loop: %w", err)
	}

	return nil
}

// Update handles this frame's input and then advances the session.
func (that *Game) Update() error {
	if that.ctx.Err() != nil || that.input.QuitPressed() {
		that.session.Stop()
	}

	if !that.session.Running() {
		that.logger.Info("game loop stopped", "score", that.session.Score())
		return ebiten.Termination
	}

	now := that.clock()

	switch {
	case that.input.Clicked():
		that.click(now)
	case that.input.KeyPressed():
		that.session.HandleKey(now)
	}

	that.session.Update(now)

	return nil
}

func (that *Game) click(now time.Duration) {
	log := that.logger.With("method", "click")

	x, y := that.input.CursorPosition()

	result, err := that.session.HandleClick(now, float64(x), float64(y))
	switch {
	case errors.Is(err, apperror.ErrBoardNotFound), errors.Is(err, apperror.ErrCellOccupied):
		log.Debug("click ignored", "x", x, "y", y, "error", err)
	case errors.Is(err, apperror.ErrGameNotRunning):
	case err != nil:
		log.Error("failed to handle click", "x", x, "y", y, "error", err)
	case result != tictactoe.Continue:
		log.Debug("board decided", "result", result)
	}
}

// Draw paints the boards oldest first so the newest ends up on top.
func (that *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	boards := that.session.Boards()
	for i := len(boards) - 1; i >= 0; i-- {
		drawBoard(screen, boards[i])
	}

	for i, line := range hudLines(that.session.State(), that.session.Lives(), that.session.Score()) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin, float64(hudMargin+hudLineStep*i))
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, line, hudFace, op)
	}

	if that.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.0f  boards %d", ebiten.ActualTPS(), len(boards)),
			hudMargin, that.window.Height-hudLineStep-hudMargin)
	}
}

func (that *Game) Layout(_, _ int) (int, int) {
	return that.window.Width, that.window.Height
}

func drawBoard(screen *ebiten.Image, view entity.BoardView) {
	box := view.HitBox
	if box.Width() <= 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y),
		float32(box.Width()), float32(box.Width()), boardColor(view.Fraction), false)

	for _, line := range gridLines(box) {
		vector.StrokeLine(screen, float32(line.from.X), float32(line.from.Y),
			float32(line.to.X), float32(line.to.Y), lineWidth, gridColor, true)
	}

	for row := range entity.GridSize {
		for col := range entity.GridSize {
			cell := entity.Cell{Row: row, Col: col}

			switch view.Grid[row][col] {
			case entity.PlayerMark:
				drawCross(screen, cellBox(box, cell))
			case entity.OpponentMark:
				drawNought(screen, cellBox(box, cell))
			case entity.EmptyCell:
			}
		}
	}
}

func drawCross(screen *ebiten.Image, cell entity.Rect) {
	pad := cell.Width() * markPadding
	minX, minY := float32(cell.Min.X+pad), float32(cell.Min.Y+pad)
	maxX, maxY := float32(cell.Max.X-pad), float32(cell.Max.Y-pad)

	vector.StrokeLine(screen, minX, minY, maxX, maxY, lineWidth, playerColor, true)
	vector.StrokeLine(screen, minX, maxY, maxX, minY, lineWidth, playerColor, true)
}

func drawNought(screen *ebiten.Image, cell entity.Rect) {
	radius := max(cell.Width()/2-cell.Width()*markPadding, 1)

	vector.StrokeCircle(screen, float32((cell.Min.X+cell.Max.X)/2), float32((cell.Min.Y+cell.Max.Y)/2),
		float32(radius), lineWidth, opponentColor, true)
}
