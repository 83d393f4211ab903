package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoll/internal/apperror"
	"github.com/rocketscienceinc/tictactoll/internal/entity"
)

type Result int8

const (
	Continue Result = iota
	Win
	Loss
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "continue"
	}
}

// randSource is satisfied by *rand.Rand from math/rand/v2.
type randSource interface {
	IntN(n int) int
}

// lineScan is the classification of one winning line.
type lineScan struct {
	player       int
	opponent     int
	candidate    entity.Cell
	hasCandidate bool
}

// scanLine counts marks along the line. Every empty cell overwrites the
// candidate, so the last empty cell in scan order is kept.
func scanLine(board *entity.BoardState, line [3]entity.Cell) lineScan {
	var scan lineScan

	for _, cell := range line {
		switch board.At(cell) {
		case entity.EmptyCell:
			scan.candidate = cell
			scan.hasCandidate = true
		case entity.PlayerMark:
			scan.player++
		case entity.OpponentMark:
			scan.opponent++
		}
	}

	return scan
}

// EvaluateAndAdvance decides the board after a player placement and, if
// the board is still open, makes the opponent's move.
func EvaluateAndAdvance(board *entity.BoardState, rng randSource) (Result, error) {
	if board.IsDecided() {
		return resultOf(board.Outcome), nil
	}

	var scans [len(entity.WinningLines)]lineScan
	for i, line := range entity.WinningLines {
		scans[i] = scanLine(board, line)
	}

	// a completed player line wins wherever it sits in line order
	for _, scan := range scans {
		if scan.player == len(entity.WinningLines[0]) {
			board.Outcome = entity.Win
			return Win, nil
		}
	}

	candidates := make([]entity.Cell, 0, len(scans))

	for _, scan := range scans {
		switch {
		case board.TurnCount == entity.MaxTurnCount:
			board.Outcome = entity.Loss
			return Loss, nil

		case scan.opponent == 2 && scan.player == 0:
			if err := board.PlaceMark(scan.candidate, entity.OpponentMark); err != nil {
				return Continue, fmt.Errorf("failed to complete line: %w", err)
			}

			board.Outcome = entity.Loss
			return Loss, nil

		case scan.player == 2 && scan.opponent == 0:
			if err := board.PlaceMark(scan.candidate, entity.OpponentMark); err != nil {
				return Continue, fmt.Errorf("failed to block line: %w", err)
			}

			board.Turn = entity.PlayerTurn
			return Continue, nil

		case scan.hasCandidate:
			candidates = append(candidates, scan.candidate)
		}
	}

	return randomMove(board, candidates, rng)
}

// randomMove picks one of the low-priority candidates. Cells shared by
// several open lines appear several times and are picked more often.
func randomMove(board *entity.BoardState, candidates []entity.Cell, rng randSource) (Result, error) {
	if len(candidates) == 0 {
		return Continue, fmt.Errorf("%w: turn %d", apperror.ErrEmptyCandidateSet, board.TurnCount)
	}

	cell := candidates[rng.IntN(len(candidates))]
	if err := board.PlaceMark(cell, entity.OpponentMark); err != nil {
		return Continue, fmt.Errorf("failed to place random move: %w", err)
	}

	if board.TurnCount >= entity.MaxTurnCount {
		board.Outcome = entity.Loss
		return Loss, nil
	}

	board.Turn = entity.PlayerTurn

	return Continue, nil
}

func resultOf(outcome entity.Outcome) Result {
	switch outcome {
	case entity.Win:
		return Win
	case entity.Loss:
		return Loss
	default:
		return Continue
	}
}
