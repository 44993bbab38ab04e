package domain

type Move struct {
	Player PlayerID   `json:"player"`
	Coord  Coordinate `json:"coord"`
}

type Game struct {
	Board         [][]PlayerID
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	Moves         []Move
}

func NewGame(boardSize int) (*Game, error) {
	if boardSize < MinBoardSize {
		return nil, ErrBadBoardSize
	}
	return &Game{
		Board:         NewBoard(boardSize),
		CurrentPlayer: Black,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

func (g *Game) MakeMove(player PlayerID, c Coordinate) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}
	if player != g.CurrentPlayer {
		return ErrNotYourTurn
	}
	if !c.InBounds(len(g.Board)) {
		return ErrInvalidMove
	}
	if g.Board[c.Row][c.Col] != Empty {
		return ErrCellOccupied
	}

	g.Board[c.Row][c.Col] = player
	g.Moves = append(g.Moves, Move{Player: player, Coord: c})

	if CheckWin(g.Board, c, player) {
		g.Status = StatusWon
		g.Winner = player
		return nil
	}

	if CheckDraw(g.Board) {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)
	return nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
