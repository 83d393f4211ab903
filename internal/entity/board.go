package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoll/internal/apperror"
)

// Mark is the content of a single cell.
type Mark int8

const (
	EmptyCell Mark = iota
	PlayerMark
	OpponentMark
)

func (m Mark) String() string {
	switch m {
	case PlayerMark:
		return "X"
	case OpponentMark:
		return "O"
	default:
		return " "
	}
}

type Turn int8

const (
	PlayerTurn Turn = iota
	OpponentTurn
)

type Outcome int8

const (
	Undecided Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "undecided"
	}
}

const (
	GridSize     = 3
	MaxTurnCount = GridSize * GridSize
)

// Cell addresses a square by row and column.
type Cell struct {
	Row int
	Col int
}

// Index returns the row-major index of the cell.
func (c Cell) Index() int {
	return c.Row*GridSize + c.Col
}

// CellFromIndex is the inverse of Cell.Index.
func CellFromIndex(idx int) Cell {
	return Cell{Row: idx / GridSize, Col: idx % GridSize}
}

func (c Cell) valid() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// WinningLines is evaluated in declaration order; the order decides which
// forcing line the opponent reacts to first.
var WinningLines = [8][3]Cell{
	{{2, 0}, {2, 1}, {2, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Grid is indexed [row][col].
type Grid [GridSize][GridSize]Mark

type BoardState struct {
	Grid      Grid
	Turn      Turn
	TurnCount int
	Outcome   Outcome
}

// NewBoardState returns an empty board waiting for the player.
func NewBoardState() *BoardState {
	return &BoardState{
		Turn: PlayerTurn,
	}
}

func (that *BoardState) At(c Cell) Mark {
	return that.Grid[c.Row][c.Col]
}

func (that *BoardState) IsDecided() bool {
	return that.Outcome != Undecided
}

func (that *BoardState) IsFull() bool {
	return that.TurnCount >= MaxTurnCount
}

// PlaceMark writes mark into an empty cell and counts the turn. It never
// overwrites and never touches a decided board.
func (that *BoardState) PlaceMark(c Cell, mark Mark) error {
	if that.IsDecided() {
		return apperror.ErrBoardDecided
	}

	if !c.valid() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrInvalidCell, c.Row, c.Col)
	}

	if that.At(c) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Grid[c.Row][c.Col] = mark
	that.TurnCount++

	return nil
}

// PlayerMove places the player's mark and hands the turn to the opponent.
func (that *BoardState) PlayerMove(c Cell) error {
	if that.Turn != PlayerTurn {
		return apperror.ErrNotYourTurn
	}

	if err := that.PlaceMark(c, PlayerMark); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.Turn = OpponentTurn

	return nil
}

// EmptyCells lists empty cells in row-major order.
func (that *BoardState) EmptyCells() []Cell {
	cells := make([]Cell, 0, MaxTurnCount-that.TurnCount)
	for row := range GridSize {
		for col := range GridSize {
			if that.Grid[row][col] == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}
