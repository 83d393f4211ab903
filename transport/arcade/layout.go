package arcade

import (
	"fmt"
	"image/color"

	"github.com/rocketscienceinc/tictactoll/internal/entity"
	"github.com/rocketscienceinc/tictactoll/internal/usecase"
)

var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	gridColor       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	playerColor     = color.RGBA{R: 0x1e, G: 0x66, B: 0xf5, A: 0xff}
	opponentColor   = color.RGBA{R: 0xd2, G: 0x0f, B: 0x39, A: 0xff}
	hudColor        = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

	freshColor   = color.RGBA{R: 0xa6, G: 0xe3, B: 0xa1, A: 0xff}
	expiredColor = color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff}
)

type segment struct {
	from entity.Point
	to   entity.Point
}

// gridLines returns the two vertical and two horizontal dividers of box.
func gridLines(box entity.Rect) [4]segment {
	third := box.Width() / entity.GridSize

	var lines [4]segment
	for i := range 2 {
		offset := third * float64(i+1)
		lines[i] = segment{
			from: entity.Point{X: box.Min.X + offset, Y: box.Min.Y},
			to:   entity.Point{X: box.Min.X + offset, Y: box.Max.Y},
		}
		lines[i+2] = segment{
			from: entity.Point{X: box.Min.X, Y: box.Min.Y + offset},
			to:   entity.Point{X: box.Max.X, Y: box.Min.Y + offset},
		}
	}

	return lines
}

// cellBox is the square of one cell inside box.
func cellBox(box entity.Rect, c entity.Cell) entity.Rect {
	third := box.Width() / entity.GridSize
	minX := box.Min.X + third*float64(c.Col)
	minY := box.Min.Y + third*float64(c.Row)

	return entity.Rect{
		Min: entity.Point{X: minX, Y: minY},
		Max: entity.Point{X: minX + third, Y: minY + third},
	}
}

// boardColor fades from fresh to expired as the board runs out of time.
func boardColor(fraction float64) color.RGBA {
	t := min(max(fraction, 0), 1)

	return color.RGBA{
		R: uint8(entity.Lerp(float64(freshColor.R), float64(expiredColor.R), t)),
		G: uint8(entity.Lerp(float64(freshColor.G), float64(expiredColor.G), t)),
		B: uint8(entity.Lerp(float64(freshColor.B), float64(expiredColor.B), t)),
		A: 0xff,
	}
}

func hudLines(state usecase.GameState, lives, score int) []string {
	switch state {
	case usecase.StateMenu:
		return []string{
			"TIC-TAC-TOLL",
			"Click or press any key to start",
			"Esc quits",
		}
	case usecase.StateGameOver:
		return []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", score),
			"Press any key to play again",
		}
	default:
		return []string{fmt.Sprintf("Lives: %d  Score: %d", lives, score)}
	}
}
