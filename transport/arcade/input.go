package arcade

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is what the frame loop reads from the player each tick.
type Input interface {
	CursorPosition() (x, y int)
	Clicked() bool
	KeyPressed() bool
	QuitPressed() bool
}

type ebitenInput struct {
	keys []ebiten.Key
}

func (that *ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (that *ebitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// KeyPressed ignores Escape, which is reserved for quitting.
func (that *ebitenInput) KeyPressed() bool {
	that.keys = inpututil.AppendJustPressedKeys(that.keys[:0])

	return slices.ContainsFunc(that.keys, func(key ebiten.Key) bool {
		return key != ebiten.KeyEscape
	})
}

func (that *ebitenInput) QuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
