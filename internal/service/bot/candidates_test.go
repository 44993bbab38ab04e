package bot

import (
	"testing"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

func TestCandidateMovesEmptyBoardReturnsEveryCellOnce(t *testing.T) {
	board := domain.NewBoard(7)
	candidates := CandidateMoves(board)
	if len(candidates) != 49 {
		t.Fatalf("expected 49 candidates on an empty 7x7 board, got %d", len(candidates))
	}
	seen := map[domain.Coordinate]bool{}
	for _, c := range candidates {
		if seen[c] {
			t.Fatalf("duplicate candidate %v", c)
		}
		seen[c] = true
	}
}

func TestCandidateMovesNeverIncludesOccupiedCell(t *testing.T) {
	board := domain.NewBoard(9)
	board[4][4] = domain.Black
	board[4][5] = domain.White
	for _, c := range CandidateMoves(board) {
		if board[c.Row][c.Col] != domain.Empty {
			t.Fatalf("candidate %v references an occupied cell", c)
		}
	}
}

func TestCandidateMovesRestrictedToRadius(t *testing.T) {
	board := domain.NewBoard(15)
	board[7][7] = domain.Black
	candidates := CandidateMoves(board)

	// 5x5 neighborhood around the stone, minus the stone itself.
	if len(candidates) != 24 {
		t.Fatalf("expected 24 candidates around a lone stone, got %d", len(candidates))
	}
	for _, c := range candidates {
		dr := c.Row - 7
		dc := c.Col - 7
		if dr < -2 || dr > 2 || dc < -2 || dc > 2 {
			t.Fatalf("candidate %v outside the radius-2 neighborhood", c)
		}
	}
}

func TestCandidateMovesRowMajorOrder(t *testing.T) {
	board := domain.NewBoard(9)
	board[4][4] = domain.Black
	candidates := CandidateMoves(board)
	for i := 1; i < len(candidates); i++ {
		prev, cur := candidates[i-1], candidates[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("candidates not in row-major order: %v before %v", prev, cur)
		}
	}
}

func TestCandidateMovesFullBoardReturnsNothing(t *testing.T) {
	board := domain.NewBoard(5)
	for r := range board {
		for c := range board[r] {
			board[r][c] = domain.Black
		}
	}
	if got := CandidateMoves(board); len(got) != 0 {
		t.Fatalf("expected no candidates on a full board, got %d", len(got))
	}
}
