package repository

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/tictactoll/internal/apperror"
	"github.com/rocketscienceinc/tictactoll/internal/entity"
)

var ErrBoardAlreadyExists = errors.New("board already exists")

// BoardRegistry owns the active boards. Boards live in an arena keyed by
// ID; order holds the IDs newest first, which is both the hit-test
// priority and the reverse of the draw order.
type BoardRegistry struct {
	boards map[entity.BoardID]*entity.Board
	order  []entity.BoardID
}

func NewBoardRegistry() *BoardRegistry {
	return &BoardRegistry{
		boards: make(map[entity.BoardID]*entity.Board),
	}
}

// Insert adds the board in front of every other board.
func (that *BoardRegistry) Insert(board *entity.Board) error {
	if _, ok := that.boards[board.ID]; ok {
		return fmt.Errorf("%w: %s", ErrBoardAlreadyExists, board.ID)
	}

	that.boards[board.ID] = board
	that.order = slices.Insert(that.order, 0, board.ID)

	return nil
}

func (that *BoardRegistry) GetByID(id entity.BoardID) (*entity.Board, error) {
	board, ok := that.boards[id]
	if !ok {
		return nil, apperror.ErrBoardNotFound
	}

	return board, nil
}

// Remove drops the board by identity and reports whether it was present.
func (that *BoardRegistry) Remove(id entity.BoardID) bool {
	if _, ok := that.boards[id]; !ok {
		return false
	}

	delete(that.boards, id)
	that.order = slices.DeleteFunc(that.order, func(cmp entity.BoardID) bool {
		return cmp == id
	})

	return true
}

// Tick refreshes every board's geometry and removes the boards whose
// timer ran out. The expired boards are returned oldest first.
func (that *BoardRegistry) Tick(now time.Duration) []*entity.Board {
	var expired []*entity.Board

	for i := len(that.order) - 1; i >= 0; i-- {
		board := that.boards[that.order[i]]
		board.Refresh(now)

		if board.Fraction() > 1 {
			expired = append(expired, board)
		}
	}

	for _, board := range expired {
		that.Remove(board.ID)
	}

	return expired
}

// HitTest returns the topmost board whose hit box contains the point.
func (that *BoardRegistry) HitTest(x, y float64) (*entity.Board, bool) {
	for _, id := range that.order {
		board := that.boards[id]
		if board.HitBox().Contains(x, y) {
			return board, true
		}
	}

	return nil, false
}

// Snapshot returns views of all boards, newest first.
func (that *BoardRegistry) Snapshot() []entity.BoardView {
	views := make([]entity.BoardView, 0, len(that.order))
	for _, id := range that.order {
		views = append(views, that.boards[id].View())
	}

	return views
}

func (that *BoardRegistry) Len() int {
	return len(that.order)
}

func (that *BoardRegistry) Clear() {
	clear(that.boards)
	that.order = that.order[:0]
}
