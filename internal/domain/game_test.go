package domain

import "testing"

func TestNewGameRejectsTinyBoard(t *testing.T) {
	if _, err := NewGame(4); err != ErrBadBoardSize {
		t.Fatalf("expected ErrBadBoardSize, got %v", err)
	}
}

func TestMakeMoveAlternatesTurns(t *testing.T) {
	g, err := NewGame(15)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.MakeMove(Black, Coordinate{Row: 7, Col: 7}); err != nil {
		t.Fatal(err)
	}
	if g.CurrentPlayer != White {
		t.Fatalf("expected white to move, got %v", g.CurrentPlayer)
	}
	if err := g.MakeMove(Black, Coordinate{Row: 7, Col: 8}); err != ErrNotYourTurn {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestMakeMoveRejectsOccupiedCell(t *testing.T) {
	g, _ := NewGame(15)
	if err := g.MakeMove(Black, Coordinate{Row: 7, Col: 7}); err != nil {
		t.Fatal(err)
	}
	if err := g.MakeMove(White, Coordinate{Row: 7, Col: 7}); err != ErrCellOccupied {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
}

func TestMakeMoveDetectsWin(t *testing.T) {
	g, _ := NewGame(15)
	for col := 0; col < 4; col++ {
		if err := g.MakeMove(Black, Coordinate{Row: 7, Col: col}); err != nil {
			t.Fatal(err)
		}
		if err := g.MakeMove(White, Coordinate{Row: 8, Col: col + 5}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.MakeMove(Black, Coordinate{Row: 7, Col: 4}); err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusWon || g.Winner != Black {
		t.Fatalf("expected black win, got status=%v winner=%v", g.Status, g.Winner)
	}
	if err := g.MakeMove(White, Coordinate{Row: 0, Col: 0}); err != ErrGameOver {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestOpponentIsTotal(t *testing.T) {
	if Opponent(Black) != White || Opponent(White) != Black {
		t.Fatal("opponent mapping broken")
	}
	if Opponent(Empty) != Empty {
		t.Fatal("empty has no opponent")
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, valid := range []string{"easy", "medium", "hard"} {
		if _, ok := ParseDifficulty(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	if _, ok := ParseDifficulty("extreme"); ok {
		t.Error("unexpected parse of invalid difficulty")
	}
}

func TestBoardsEqualAndCopy(t *testing.T) {
	a := NewBoard(7)
	a[3][3] = Black
	b := CopyBoard(a)
	if !BoardsEqual(a, b) {
		t.Fatal("copy must equal source")
	}
	b[0][0] = White
	if BoardsEqual(a, b) {
		t.Fatal("copies must be independent")
	}
}
