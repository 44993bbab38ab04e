package domain

import "testing"

func placeRun(board [][]PlayerID, start Coordinate, deltaRow, deltaCol, count int, player PlayerID) Coordinate {
	last := start
	for i := 0; i < count; i++ {
		last = Coordinate{Row: start.Row + i*deltaRow, Col: start.Col + i*deltaCol}
		board[last.Row][last.Col] = player
	}
	return last
}

func TestCheckWinAllDirections(t *testing.T) {
	cases := []struct {
		name     string
		deltaRow int
		deltaCol int
	}{
		{"horizontal", 0, 1},
		{"vertical", 1, 0},
		{"diagonal down", 1, 1},
		{"diagonal up", -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := NewBoard(15)
			start := Coordinate{Row: 7, Col: 3}
			last := placeRun(board, start, tc.deltaRow, tc.deltaCol, 5, Black)
			if !CheckWin(board, last, Black) {
				t.Fatalf("expected win for five in a row ending at %v", last)
			}
			// The middle stone must detect the same line.
			mid := Coordinate{Row: start.Row + 2*tc.deltaRow, Col: start.Col + 2*tc.deltaCol}
			if !CheckWin(board, mid, Black) {
				t.Fatalf("expected win detected from the middle stone %v", mid)
			}
		})
	}
}

func TestCheckWinFourIsNotEnough(t *testing.T) {
	board := NewBoard(15)
	last := placeRun(board, Coordinate{Row: 7, Col: 3}, 0, 1, 4, Black)
	if CheckWin(board, last, Black) {
		t.Fatal("four in a row must not win")
	}
}

func TestCheckWinBlockedFourAtEdge(t *testing.T) {
	board := NewBoard(15)
	// Four against the left edge, blocked on the right.
	last := placeRun(board, Coordinate{Row: 0, Col: 0}, 0, 1, 4, White)
	board[0][4] = Black
	if CheckWin(board, last, White) {
		t.Fatal("blocked four must not win")
	}
}

func TestCheckWinIgnoresOpponentStones(t *testing.T) {
	board := NewBoard(15)
	// Alternating stones never win.
	for col := 0; col < 10; col++ {
		player := Black
		if col%2 == 1 {
			player = White
		}
		board[5][col] = player
	}
	if CheckWin(board, Coordinate{Row: 5, Col: 4}, Black) {
		t.Fatal("interleaved stones must not win")
	}
}

func TestCheckWinOverline(t *testing.T) {
	board := NewBoard(15)
	last := placeRun(board, Coordinate{Row: 7, Col: 3}, 0, 1, 6, Black)
	if !CheckWin(board, last, Black) {
		t.Fatal("six in a row counts as a win")
	}
}
