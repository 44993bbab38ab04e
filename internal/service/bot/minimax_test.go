package bot

import (
	"math"
	"testing"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

func TestMinimaxDepthZeroEqualsEvaluator(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(11)
	board[5][5] = domain.Black
	board[5][6] = domain.Black
	board[6][5] = domain.White

	want := e.EvaluateBoard(board, domain.Black)
	got := e.minimax(board, 0, math.MinInt, math.MaxInt, true, domain.Black, domain.White)
	if got != want {
		t.Fatalf("minimax at depth 0 returned %d, evaluator returned %d", got, want)
	}
}

func TestMinimaxImmediateWinScaledByDepth(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	// Black four in a row with one open end at (7,7).
	for col := 3; col <= 6; col++ {
		board[7][col] = domain.Black
	}
	board[7][2] = domain.White

	got := e.minimax(board, 3, math.MinInt, math.MaxInt, true, domain.Black, domain.White)
	want := DefaultWeights().Five * 3
	if got != want {
		t.Fatalf("expected win score %d scaled by remaining depth, got %d", want, got)
	}
}

func TestMinimaxOpponentWinIsNegative(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	// White four in a row, black cannot stop both ends in the
	// minimizing ply alone.
	for col := 3; col <= 6; col++ {
		board[7][col] = domain.White
	}

	got := e.minimax(board, 2, math.MinInt, math.MaxInt, false, domain.Black, domain.White)
	want := -DefaultWeights().Five * 2
	if got != want {
		t.Fatalf("expected opponent win score %d, got %d", want, got)
	}
}

func TestMinimaxRestoresBoard(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(9)
	board[4][4] = domain.Black
	board[4][5] = domain.White
	board[5][4] = domain.Black
	snapshot := domain.CopyBoard(board)

	e.minimax(board, 2, math.MinInt, math.MaxInt, true, domain.Black, domain.White)

	if !domain.BoardsEqual(board, snapshot) {
		t.Fatal("minimax leaked a speculative placement")
	}
}
