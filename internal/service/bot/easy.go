package bot

import (
	"math"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

// selectEasyMove greedily scores each candidate one placement deep:
// the position after playing there, minus a damped score of the
// position the opponent would reach by taking the same cell. Both
// evaluations are from mover's perspective, so a cell the opponent
// badly wants shows up as a large negative second term and the
// subtraction turns it into a bonus. Ties keep the first candidate
// seen.
func (e *Engine) selectEasyMove(board [][]domain.PlayerID, mover domain.PlayerID) (domain.Coordinate, bool) {
	candidates := CandidateMoves(board)
	if len(candidates) == 0 {
		return domain.Coordinate{}, false
	}

	opponent := domain.Opponent(mover)
	bestScore := math.Inf(-1)
	var bestMove domain.Coordinate

	for _, c := range candidates {
		domain.PlaceStone(board, c, mover)
		moverScore := e.EvaluateBoard(board, mover)
		domain.RemoveStone(board, c)

		domain.PlaceStone(board, c, opponent)
		opponentScore := e.EvaluateBoard(board, mover)
		domain.RemoveStone(board, c)

		combined := float64(moverScore) - e.weights.EasyDefenseDamping*float64(opponentScore)
		if combined > bestScore {
			bestScore = combined
			bestMove = c
		}
	}

	return bestMove, true
}
