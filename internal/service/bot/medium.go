package bot

import (
	"math"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

// selectMediumMove scores each candidate by the mover-perspective
// evaluation after placing there, tracks the live set of candidates
// tied at the best score, and picks one of them uniformly at random.
// The randomness is confined to tie-breaking: a strictly worse cell is
// never returned.
func (e *Engine) selectMediumMove(board [][]domain.PlayerID, mover domain.PlayerID) (domain.Coordinate, bool) {
	candidates := CandidateMoves(board)
	if len(candidates) == 0 {
		return domain.Coordinate{}, false
	}

	bestScore := math.MinInt
	var tied []domain.Coordinate

	for _, c := range candidates {
		domain.PlaceStone(board, c, mover)
		score := e.EvaluateBoard(board, mover)
		domain.RemoveStone(board, c)

		if score > bestScore {
			bestScore = score
			tied = tied[:0]
			tied = append(tied, c)
		} else if score == bestScore {
			tied = append(tied, c)
		}
	}

	return tied[e.rng.Intn(len(tied))], true
}
