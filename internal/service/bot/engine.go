package bot

import (
	"math/rand"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

const (
	defaultSearchDepth   = 2
	defaultTopCandidates = 8
)

// Engine selects moves for the bot side. It holds no per-game state;
// the same engine serves any number of sequential calls. A single call
// mutates the passed board in place and restores it before returning,
// so concurrent calls must use independent board copies.
type Engine struct {
	weights       Weights
	searchDepth   int
	topCandidates int
	rng           *rand.Rand
}

func NewEngine() *Engine {
	return NewEngineWith(DefaultWeights(), defaultSearchDepth, defaultTopCandidates,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWith builds an engine with explicit tuning, used by tests
// and by config-driven wiring. rng drives the medium tier's tie-break
// and must not be nil.
func NewEngineWith(weights Weights, searchDepth, topCandidates int, rng *rand.Rand) *Engine {
	if searchDepth < 1 {
		searchDepth = defaultSearchDepth
	}
	if topCandidates < 1 {
		topCandidates = defaultTopCandidates
	}
	return &Engine{
		weights:       weights,
		searchDepth:   searchDepth,
		topCandidates: topCandidates,
		rng:           rng,
	}
}

// SelectMove picks a move for mover at the requested difficulty. The
// second return is false when no empty cell exists or the difficulty is
// unknown; the caller treats that as "no move" rather than an error.
func (e *Engine) SelectMove(board [][]domain.PlayerID, mover domain.PlayerID, difficulty domain.Difficulty) (domain.Coordinate, bool) {
	switch difficulty {
	case domain.DifficultyEasy:
		return e.selectEasyMove(board, mover)
	case domain.DifficultyMedium:
		return e.selectMediumMove(board, mover)
	case domain.DifficultyHard:
		return e.selectHardMove(board, mover)
	default:
		return domain.Coordinate{}, false
	}
}
