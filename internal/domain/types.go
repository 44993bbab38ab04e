package domain

type PlayerID int

const (
	Empty PlayerID = 0
	Black PlayerID = 1
	White PlayerID = 2
)

// Opponent maps each player to the other one. Empty maps to itself.
func Opponent(p PlayerID) PlayerID {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

const (
	DefaultBoardSize = 15
	MinBoardSize     = 5
	ToWin            = 5
)

// Coordinate is a 0-indexed (row, column) pair on the board.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinate) InBounds(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

var BotNames = map[Difficulty]string{
	DifficultyEasy:   "Alice",
	DifficultyMedium: "Bob",
	DifficultyHard:   "Charles",
}

func GetBotName(difficulty Difficulty) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

func IsBotName(username string) bool {
	if username == "BOT" {
		return true
	}
	for _, name := range BotNames {
		if username == name {
			return true
		}
	}
	return false
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrCellOccupied Error = "cell is occupied"
	ErrGameOver     Error = "game is over"
	ErrNotYourTurn  Error = "not your turn"
	ErrBadBoardSize Error = "invalid board size"
	ErrGameNotFound Error = "no active game"
)
