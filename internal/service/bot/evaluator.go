package bot

import (
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

const windowSize = 5

// Window directions: one entry per axis so every 5-cell window on the
// board is visited exactly once when scanning all start cells.
var windowDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// evaluateWindow scores the 5 consecutive cells starting at (row, col)
// along (deltaRow, deltaCol) from mover's perspective. The caller
// guarantees the window stays in bounds.
//
// A window containing stones of both players is dead and scores 0.
// Opponent-only windows score negatively, damped by OpponentDamping.
func (e *Engine) evaluateWindow(board [][]domain.PlayerID, row, col, deltaRow, deltaCol int, mover, opponent domain.PlayerID) int {
	moverStones := 0
	opponentStones := 0
	empties := 0

	r, c := row, col
	for i := 0; i < windowSize; i++ {
		switch board[r][c] {
		case mover:
			moverStones++
		case opponent:
			opponentStones++
		default:
			empties++
		}
		r += deltaRow
		c += deltaCol
	}

	if moverStones > 0 && opponentStones > 0 {
		return 0
	}
	if moverStones > 0 {
		return e.weights.patternScore(moverStones, empties)
	}
	if opponentStones > 0 {
		return -int(e.weights.OpponentDamping * float64(e.weights.patternScore(opponentStones, empties)))
	}
	return 0
}

// EvaluateBoard sums evaluateWindow over every in-bounds window start
// for all four directions. Positive favors mover. Boards smaller than
// the window size contribute nothing.
func (e *Engine) EvaluateBoard(board [][]domain.PlayerID, mover domain.PlayerID) int {
	size := domain.BoardSize(board)
	opponent := domain.Opponent(mover)
	score := 0

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			for _, dir := range windowDirections {
				endRow := row + dir[0]*(windowSize-1)
				endCol := col + dir[1]*(windowSize-1)
				if endRow < 0 || endRow >= size || endCol < 0 || endCol >= size {
					continue
				}
				score += e.evaluateWindow(board, row, col, dir[0], dir[1], mover, opponent)
			}
		}
	}

	return score
}
