package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_Progress(t *testing.T) {
	lifecycle := NewLifecycle(2*time.Second, 5*time.Second, 2, Point{X: 400, Y: 300}, 300)

	t.Run("Zero at spawn", func(t *testing.T) {
		assert.InDelta(t, 0.0, lifecycle.Progress(2*time.Second), 1e-9)
	})

	t.Run("One at spawn plus effective duration", func(t *testing.T) {
		// Given: a speed modifier of 2 halves the nominal duration
		require.Equal(t, 2500*time.Millisecond, lifecycle.EffectiveDuration())

		// Then: progress reaches exactly 1 at the end of it
		assert.Equal(t, 1.0, lifecycle.Progress(4500*time.Millisecond))
		assert.False(t, lifecycle.Expired(4500*time.Millisecond))
	})

	t.Run("Linear in between", func(t *testing.T) {
		assert.InDelta(t, 0.25, lifecycle.Progress(2625*time.Millisecond), 1e-9)
		assert.InDelta(t, 0.5, lifecycle.Progress(3250*time.Millisecond), 1e-9)
	})

	t.Run("Expired past the end", func(t *testing.T) {
		assert.True(t, lifecycle.Expired(4501*time.Millisecond))
	})

	t.Run("Clamped before spawn", func(t *testing.T) {
		assert.InDelta(t, 0.0, lifecycle.Progress(time.Second), 1e-9)
	})
}

func TestLifecycle_Size(t *testing.T) {
	// Given: a board growing to 300 over 5 seconds
	lifecycle := NewLifecycle(0, 5*time.Second, 1, Point{X: 200, Y: 200}, 300)

	// Then: its size follows a plain lerp
	assert.InDelta(t, 0.0, lifecycle.Size(0), 1e-9)
	assert.InDelta(t, 150.0, lifecycle.Size(2500*time.Millisecond), 1e-9)
	assert.InDelta(t, 300.0, lifecycle.Size(5*time.Second), 1e-9)
	assert.InDelta(t, 300.0, lifecycle.Size(9*time.Second), 1e-9)

	box := lifecycle.HitBox(2500 * time.Millisecond)
	assert.Equal(t, Rect{Min: Point{X: 125, Y: 125}, Max: Point{X: 275, Y: 275}}, box)
}

func TestNewLifecycle_NonPositiveSpeed(t *testing.T) {
	lifecycle := NewLifecycle(0, 5*time.Second, 0, Point{}, 300)

	assert.Equal(t, 5*time.Second, lifecycle.EffectiveDuration())
}

func TestRect_Contains(t *testing.T) {
	box := Rect{Min: Point{X: 10, Y: 10}, Max: Point{X: 20, Y: 20}}

	assert.True(t, box.Contains(15, 15))
	assert.False(t, box.Contains(10, 15), "edges are outside")
	assert.False(t, box.Contains(15, 20), "edges are outside")
	assert.False(t, box.Contains(25, 15))
}

func TestBoard_CellAt(t *testing.T) {
	// Given: a fully grown 300px board centred at (150, 150)
	board := NewBoard(NewLifecycle(0, 5*time.Second, 1, Point{X: 150, Y: 150}, 300))
	board.Refresh(5 * time.Second)

	t.Run("Maps thirds to cells", func(t *testing.T) {
		cell, ok := board.CellAt(50, 250)
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 2, Col: 0}, cell)

		cell, ok = board.CellAt(299, 1)
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 0, Col: 2}, cell)

		cell, ok = board.CellAt(150, 150)
		require.True(t, ok)
		assert.Equal(t, Cell{Row: 1, Col: 1}, cell)
	})

	t.Run("Outside the box", func(t *testing.T) {
		_, ok := board.CellAt(301, 150)
		assert.False(t, ok)
	})
}

func TestNewBoard(t *testing.T) {
	// When: a board is spawned
	board := NewBoard(NewLifecycle(time.Second, 5*time.Second, 1, Point{X: 10, Y: 10}, 300))

	// Then: it has an ID, an empty state and zero size
	assert.NotEmpty(t, board.ID)
	assert.Equal(t, NewBoardState(), board.State)
	assert.InDelta(t, 0.0, board.Size(), 1e-9)
	assert.NotEqual(t, board.ID, NewBoard(board.Lifecycle).ID)
}
