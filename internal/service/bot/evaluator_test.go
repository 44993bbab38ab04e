package bot

import (
	"math/rand"
	"testing"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

func testEngine(seed int64) *Engine {
	return NewEngineWith(DefaultWeights(), 2, 8, rand.New(rand.NewSource(seed)))
}

func TestPatternScoreTable(t *testing.T) {
	w := DefaultWeights()
	cases := []struct {
		stones, empties, want int
	}{
		{5, 0, 100000},
		{4, 1, 10000},
		{4, 0, 1000},
		{3, 2, 1000},
		{3, 1, 100},
		{2, 3, 100},
		{2, 2, 10},
		{1, 4, 0},
		{0, 5, 0},
	}
	for _, tc := range cases {
		if got := w.patternScore(tc.stones, tc.empties); got != tc.want {
			t.Errorf("patternScore(%d, %d) = %d, want %d", tc.stones, tc.empties, got, tc.want)
		}
	}
}

func TestOpenThreeAndBlockedFourShareScore(t *testing.T) {
	w := DefaultWeights()
	if w.patternScore(3, 2) != w.patternScore(4, 0) {
		t.Fatalf("open three and blocked four must share the same score, got %d and %d",
			w.patternScore(3, 2), w.patternScore(4, 0))
	}
}

func TestEvaluateWindowDeadLine(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(7)
	// Mixed window in every direction through (3,3).
	board[3][3] = domain.Black
	board[3][4] = domain.White
	board[4][3] = domain.White
	board[4][4] = domain.White
	board[4][2] = domain.White

	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	starts := [4]domain.Coordinate{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 0, Col: 0}, {Row: 0, Col: 6}}
	for i, dir := range dirs {
		got := e.evaluateWindow(board, starts[i].Row, starts[i].Col, dir[0], dir[1], domain.Black, domain.White)
		if got != 0 {
			t.Errorf("direction %v: window with both players scored %d, want 0", dir, got)
		}
	}
}

func TestEvaluateWindowOpponentDamping(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(7)
	// White open three on row 0, cells 1..3; window 0..4 holds 3 stones, 2 empties.
	board[0][1] = domain.White
	board[0][2] = domain.White
	board[0][3] = domain.White

	got := e.evaluateWindow(board, 0, 0, 0, 1, domain.Black, domain.White)
	want := -int(0.9 * float64(DefaultWeights().OpenThree))
	if got != want {
		t.Fatalf("opponent open three scored %d, want %d", got, want)
	}
}

func TestEvaluateBoardEmptyIsZero(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	if got := e.EvaluateBoard(board, domain.Black); got != 0 {
		t.Fatalf("empty board scored %d, want 0", got)
	}
}

func TestEvaluateBoardSmallBoardNoWindows(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(4)
	board[1][1] = domain.Black
	board[2][2] = domain.Black
	if got := e.EvaluateBoard(board, domain.Black); got != 0 {
		t.Fatalf("4x4 board has no 5-cell windows, scored %d", got)
	}
}

func TestEvaluateBoardFiveInRow(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(15)
	for col := 3; col <= 7; col++ {
		board[7][col] = domain.Black
	}
	score := e.EvaluateBoard(board, domain.Black)
	if score < DefaultWeights().Five {
		t.Fatalf("five in a row scored %d, want at least %d", score, DefaultWeights().Five)
	}
}

func TestEvaluateBoardRestoresNothing(t *testing.T) {
	e := testEngine(1)
	board := domain.NewBoard(9)
	board[4][4] = domain.Black
	board[4][5] = domain.White
	snapshot := domain.CopyBoard(board)

	e.EvaluateBoard(board, domain.Black)
	e.EvaluateBoard(board, domain.White)

	if !domain.BoardsEqual(board, snapshot) {
		t.Fatal("EvaluateBoard mutated the board")
	}
}
