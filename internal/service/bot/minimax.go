package bot

import (
	"math"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

// minimax runs a depth-limited adversarial search with alpha-beta
// pruning. The evaluation perspective is pinned to mover for the whole
// recursion regardless of whose turn it is. Every speculative placement
// is undone before the function returns, on every path.
//
// A placement that wins on the spot short-circuits with ±Five×depth so
// the search prefers faster forced wins and slower forced losses.
func (e *Engine) minimax(board [][]domain.PlayerID, depth int, alpha, beta int, maximizing bool, mover, opponent domain.PlayerID) int {
	candidates := CandidateMoves(board)

	if depth == 0 || len(candidates) == 0 {
		return e.EvaluateBoard(board, mover)
	}

	if maximizing {
		maxEval := math.MinInt
		for _, c := range candidates {
			domain.PlaceStone(board, c, mover)

			if domain.CheckWin(board, c, mover) {
				domain.RemoveStone(board, c)
				return e.weights.Five * depth
			}

			eval := e.minimax(board, depth-1, alpha, beta, false, mover, opponent)
			domain.RemoveStone(board, c)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, c := range candidates {
		domain.PlaceStone(board, c, opponent)

		if domain.CheckWin(board, c, opponent) {
			domain.RemoveStone(board, c)
			return -e.weights.Five * depth
		}

		eval := e.minimax(board, depth-1, alpha, beta, true, mover, opponent)
		domain.RemoveStone(board, c)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}
