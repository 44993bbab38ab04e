package bot

import (
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

// candidateRadius bounds the neighborhood scan: an empty cell is a
// candidate iff any cell within Chebyshev distance 2 holds a stone.
const candidateRadius = 2

// CandidateMoves lists the empty cells worth searching, in row-major
// order. On a board with no stones (or none near any empty cell) it
// falls back to every empty cell so the caller always has a move while
// one exists.
func CandidateMoves(board [][]domain.PlayerID) []domain.Coordinate {
	size := domain.BoardSize(board)
	candidates := []domain.Coordinate{}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board[row][col] != domain.Empty {
				continue
			}
			if hasNearbyStone(board, row, col) {
				candidates = append(candidates, domain.Coordinate{Row: row, Col: col})
			}
		}
	}

	if len(candidates) > 0 {
		return candidates
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board[row][col] == domain.Empty {
				candidates = append(candidates, domain.Coordinate{Row: row, Col: col})
			}
		}
	}
	return candidates
}

func hasNearbyStone(board [][]domain.PlayerID, row, col int) bool {
	for dr := -candidateRadius; dr <= candidateRadius; dr++ {
		for dc := -candidateRadius; dc <= candidateRadius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if domain.InBounds(board, r, c) && board[r][c] != domain.Empty {
				return true
			}
		}
	}
	return false
}
