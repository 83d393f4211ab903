package entity

import (
	"time"

	"github.com/google/uuid"
)

type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box given by its top-left and bottom-right corners.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether the point lies strictly inside the box.
func (r Rect) Contains(x, y float64) bool {
	return r.Min.X < x && x < r.Max.X && r.Min.Y < y && y < r.Max.Y
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Lerp interpolates linearly between start and end.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// Lifecycle tracks when a board was spawned and how it grows. The speed
// modifier is captured at spawn and never updated afterwards.
type Lifecycle struct {
	SpawnTime time.Duration
	Duration  time.Duration
	SpeedMod  float64
	Center    Point
	FinalSize float64
}

func NewLifecycle(spawnTime, duration time.Duration, speedMod float64, center Point, finalSize float64) Lifecycle {
	if speedMod <= 0 {
		speedMod = 1
	}

	return Lifecycle{
		SpawnTime: spawnTime,
		Duration:  duration,
		SpeedMod:  speedMod,
		Center:    center,
		FinalSize: finalSize,
	}
}

func (that Lifecycle) EffectiveDuration() time.Duration {
	return time.Duration(float64(that.Duration) / that.SpeedMod)
}

// Progress is 0 at spawn and 1 once the effective duration has elapsed.
func (that Lifecycle) Progress(now time.Duration) float64 {
	effective := that.EffectiveDuration()
	if effective <= 0 {
		return 2
	}

	elapsed := now - that.SpawnTime
	if elapsed < 0 {
		return 0
	}

	return float64(elapsed) / float64(effective)
}

func (that Lifecycle) Expired(now time.Duration) bool {
	return that.Progress(now) > 1
}

func (that Lifecycle) Size(now time.Duration) float64 {
	return Lerp(0, that.FinalSize, min(that.Progress(now), 1))
}

// HitBox is the square of the current size centred on the spawn point.
func (that Lifecycle) HitBox(now time.Duration) Rect {
	return boxAround(that.Center, that.Size(now))
}

func boxAround(center Point, size float64) Rect {
	half := size / 2

	return Rect{
		Min: Point{X: center.X - half, Y: center.Y - half},
		Max: Point{X: center.X + half, Y: center.Y + half},
	}
}

type BoardID string

func NewBoardID() BoardID {
	return BoardID(uuid.NewString())
}

// Board pairs a board's game state with its lifecycle and the geometry
// computed on the last refresh.
type Board struct {
	ID        BoardID
	State     *BoardState
	Lifecycle Lifecycle

	fraction float64
	size     float64
	hitBox   Rect
}

func NewBoard(lifecycle Lifecycle) *Board {
	board := &Board{
		ID:        NewBoardID(),
		State:     NewBoardState(),
		Lifecycle: lifecycle,
	}
	board.Refresh(lifecycle.SpawnTime)

	return board
}

// Refresh recomputes the cached geometry for the given time.
func (that *Board) Refresh(now time.Duration) {
	that.fraction = that.Lifecycle.Progress(now)
	that.size = Lerp(0, that.Lifecycle.FinalSize, min(that.fraction, 1))
	that.hitBox = boxAround(that.Lifecycle.Center, that.size)
}

func (that *Board) Fraction() float64 {
	return that.fraction
}

func (that *Board) Size() float64 {
	return that.size
}

func (that *Board) HitBox() Rect {
	return that.hitBox
}

// CellAt maps a point inside the hit box to the cell under it, splitting
// the box into thirds on each axis.
func (that *Board) CellAt(x, y float64) (Cell, bool) {
	if !that.hitBox.Contains(x, y) {
		return Cell{}, false
	}

	cellSize := that.hitBox.Width() / GridSize

	return Cell{
		Row: clampIndex(int((y - that.hitBox.Min.Y) / cellSize)),
		Col: clampIndex(int((x - that.hitBox.Min.X) / cellSize)),
	}, true
}

func clampIndex(idx int) int {
	return max(0, min(idx, GridSize-1))
}

// BoardView is a read-only copy of a board for rendering.
type BoardView struct {
	ID       BoardID
	HitBox   Rect
	Size     float64
	Fraction float64
	Grid     Grid
	Turn     Turn
	Outcome  Outcome
}

func (that *Board) View() BoardView {
	return BoardView{
		ID:       that.ID,
		HitBox:   that.hitBox,
		Size:     that.size,
		Fraction: that.fraction,
		Grid:     that.State.Grid,
		Turn:     that.State.Turn,
		Outcome:  that.State.Outcome,
	}
}
