package bot

import (
	"math/rand"
	"testing"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

func TestSelectMoveEasyEmptyBoard(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)

	move, ok := e.SelectMove(board, domain.Black, domain.DifficultyEasy)
	if !ok {
		t.Fatal("expected a move on an empty board")
	}
	if !move.InBounds(15) || board[move.Row][move.Col] != domain.Empty {
		t.Fatalf("expected an empty in-bounds cell, got %v", move)
	}
}

func TestSelectMoveHardCompletesOpenFour(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	for col := 3; col <= 6; col++ {
		board[7][col] = domain.Black
	}

	move, ok := e.SelectMove(board, domain.Black, domain.DifficultyHard)
	if !ok {
		t.Fatal("expected a move")
	}
	if move.Row != 7 || (move.Col != 2 && move.Col != 7) {
		t.Fatalf("hard tier must complete five at (7,2) or (7,7), got %v", move)
	}
}

func TestSelectMoveBlocksOpponentOpenFour(t *testing.T) {
	board := domain.NewBoard(15)
	for col := 3; col <= 6; col++ {
		board[7][col] = domain.White
	}

	for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyHard} {
		e := testEngine(1)
		move, ok := e.SelectMove(board, domain.Black, difficulty)
		if !ok {
			t.Fatalf("%s: expected a move", difficulty)
		}
		if move.Row != 7 || (move.Col != 2 && move.Col != 7) {
			t.Fatalf("%s tier must block at (7,2) or (7,7), got %v", difficulty, move)
		}
	}
}

func TestSelectMovePrefersOwnWinOverBlock(t *testing.T) {
	board := domain.NewBoard(15)
	// Black can complete five on row 3; white threatens an open four
	// on row 11. Completing wins outright and must be preferred.
	for col := 3; col <= 6; col++ {
		board[3][col] = domain.Black
		board[11][col] = domain.White
	}

	for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyHard} {
		e := testEngine(1)
		move, ok := e.SelectMove(board, domain.Black, difficulty)
		if !ok {
			t.Fatalf("%s: expected a move", difficulty)
		}
		if move.Row != 3 || (move.Col != 2 && move.Col != 7) {
			t.Fatalf("%s tier must complete its own five on row 3, got %v", difficulty, move)
		}
	}
}

func TestSelectMoveMediumRandomTieBreak(t *testing.T) {
	board := domain.NewBoard(7)

	seen := map[domain.Coordinate]bool{}
	for seed := int64(0); seed < 30; seed++ {
		e := NewEngineWith(DefaultWeights(), 2, 8, rand.New(rand.NewSource(seed)))
		move, ok := e.SelectMove(board, domain.Black, domain.DifficultyMedium)
		if !ok {
			t.Fatal("expected a move")
		}
		if board[move.Row][move.Col] != domain.Empty {
			t.Fatalf("medium tier returned occupied cell %v", move)
		}
		seen[move] = true
	}
	// Every cell on an empty board ties at score zero, so different
	// seeds should land on different cells.
	if len(seen) < 2 {
		t.Fatalf("expected tie-break randomness across seeds, always got the same cell")
	}
}

func TestSelectMoveMediumNeverPicksWorseCell(t *testing.T) {
	board := domain.NewBoard(15)
	// Black open four: completing at (7,2) or (7,7) dominates every
	// other candidate, so medium must always pick one of the two.
	for col := 3; col <= 6; col++ {
		board[7][col] = domain.Black
	}

	for seed := int64(0); seed < 20; seed++ {
		e := NewEngineWith(DefaultWeights(), 2, 8, rand.New(rand.NewSource(seed)))
		move, ok := e.SelectMove(board, domain.Black, domain.DifficultyMedium)
		if !ok {
			t.Fatal("expected a move")
		}
		if move.Row != 7 || (move.Col != 2 && move.Col != 7) {
			t.Fatalf("seed %d: medium tier picked non-best cell %v", seed, move)
		}
	}
}

func TestSelectMoveUnknownDifficulty(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	if _, ok := e.SelectMove(board, domain.Black, domain.Difficulty("impossible")); ok {
		t.Fatal("unknown difficulty must yield no move")
	}
}

func TestSelectMoveFullBoard(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(5)
	player := domain.Black
	for r := range board {
		for c := range board[r] {
			board[r][c] = player
			player = domain.Opponent(player)
		}
	}
	for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		if _, ok := e.SelectMove(board, domain.Black, difficulty); ok {
			t.Fatalf("%s: full board must yield no move", difficulty)
		}
	}
}

func TestSelectMoveRestoresBoardAllDifficulties(t *testing.T) {
	board := domain.NewBoard(11)
	board[5][5] = domain.Black
	board[5][6] = domain.White
	board[6][6] = domain.Black
	snapshot := domain.CopyBoard(board)

	for _, difficulty := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		e := testEngine(7)
		if _, ok := e.SelectMove(board, domain.White, difficulty); !ok {
			t.Fatalf("%s: expected a move", difficulty)
		}
		if !domain.BoardsEqual(board, snapshot) {
			t.Fatalf("%s: SelectMove mutated the board", difficulty)
		}
	}
}
