package bot

import (
	"math"
	"sort"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

type scoredCandidate struct {
	coord domain.Coordinate
	score int
}

// selectHardMove orders candidates by a static one-placement score,
// keeps the top few, and runs the alpha-beta search on each survivor
// with the placement applied and the opponent to reply. The first
// candidate reaching the strictly highest search score wins, so the
// static ordering doubles as the tie-breaker.
func (e *Engine) selectHardMove(board [][]domain.PlayerID, mover domain.PlayerID) (domain.Coordinate, bool) {
	candidates := CandidateMoves(board)
	if len(candidates) == 0 {
		return domain.Coordinate{}, false
	}

	opponent := domain.Opponent(mover)

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		domain.PlaceStone(board, c, mover)
		score := e.EvaluateBoard(board, mover)
		domain.RemoveStone(board, c)
		scored = append(scored, scoredCandidate{coord: c, score: score})
	}

	// Stable sort keeps row-major order among equal static scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > e.topCandidates {
		scored = scored[:e.topCandidates]
	}

	bestScore := math.MinInt
	bestMove := scored[0].coord

	for _, cand := range scored {
		domain.PlaceStone(board, cand.coord, mover)
		score := e.minimax(board, e.searchDepth, math.MinInt, math.MaxInt, false, mover, opponent)
		domain.RemoveStone(board, cand.coord)

		if score > bestScore {
			bestScore = score
			bestMove = cand.coord
		}
	}

	return bestMove, true
}
