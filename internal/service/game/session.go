package game

import (
	"sync"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/bot"
	"github.com/ashdev14/five-in-a-row/backend/pkg/uid"
)

// GameSession is one live human-vs-bot match. All access to the
// embedded game goes through the session mutex; the engine itself is
// stateless, so the lock also serializes its board mutations.
type GameSession struct {
	GameID     string
	UserID     int64
	Username   string
	BotName    string
	Difficulty domain.Difficulty
	HumanColor domain.PlayerID
	Game       *domain.Game

	CreatedAt    time.Time
	LastActivity time.Time

	engine *bot.Engine
	mu     sync.Mutex
}

// MoveResult reports what happened after a human move: the bot reply
// (nil when the game ended before the bot could answer) and the
// resulting status.
type MoveResult struct {
	HumanMove domain.Move       `json:"human_move"`
	BotMove   *domain.Move      `json:"bot_move,omitempty"`
	Status    domain.GameStatus `json:"status"`
	Winner    domain.PlayerID   `json:"winner"`
}

func NewGameSession(userID int64, username string, difficulty domain.Difficulty, boardSize int, humanColor domain.PlayerID, engine *bot.Engine) (*GameSession, error) {
	g, err := domain.NewGame(boardSize)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &GameSession{
		GameID:       uid.NewGameID(),
		UserID:       userID,
		Username:     username,
		BotName:      domain.GetBotName(difficulty),
		Difficulty:   difficulty,
		HumanColor:   humanColor,
		Game:         g,
		CreatedAt:    now,
		LastActivity: now,
		engine:       engine,
	}

	// Black opens; when the human picked white the bot moves first.
	if humanColor == domain.White {
		session.mu.Lock()
		session.playBotMove()
		session.mu.Unlock()
	}
	return session, nil
}

func (s *GameSession) BotColor() domain.PlayerID {
	return domain.Opponent(s.HumanColor)
}

// PlayHumanMove applies the human move and, if the game is still
// active, the bot's reply.
func (s *GameSession) PlayHumanMove(c domain.Coordinate) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Game.MakeMove(s.HumanColor, c); err != nil {
		return nil, err
	}
	s.LastActivity = time.Now()

	result := &MoveResult{
		HumanMove: domain.Move{Player: s.HumanColor, Coord: c},
		Status:    s.Game.Status,
		Winner:    s.Game.Winner,
	}
	if s.Game.IsFinished() {
		return result, nil
	}

	if botMove := s.playBotMove(); botMove != nil {
		result.BotMove = botMove
	}
	result.Status = s.Game.Status
	result.Winner = s.Game.Winner
	return result, nil
}

// playBotMove asks the engine for a move and applies it. Caller holds
// the session lock.
func (s *GameSession) playBotMove() *domain.Move {
	botColor := s.BotColor()
	coord, ok := s.engine.SelectMove(s.Game.Board, botColor, s.Difficulty)
	if !ok {
		return nil
	}
	if err := s.Game.MakeMove(botColor, coord); err != nil {
		return nil
	}
	s.LastActivity = time.Now()
	return &domain.Move{Player: botColor, Coord: coord}
}

// Snapshot returns a copy of the current state safe to serialize
// outside the lock.
func (s *GameSession) Snapshot() GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GameSnapshot{
		GameID:        s.GameID,
		Username:      s.Username,
		BotName:       s.BotName,
		Difficulty:    s.Difficulty,
		HumanColor:    s.HumanColor,
		Board:         domain.CopyBoard(s.Game.Board),
		CurrentPlayer: s.Game.CurrentPlayer,
		Status:        s.Game.Status,
		Winner:        s.Game.Winner,
		MoveCount:     len(s.Game.Moves),
	}
}

type GameSnapshot struct {
	GameID        string              `json:"game_id"`
	Username      string              `json:"username"`
	BotName       string              `json:"bot_name"`
	Difficulty    domain.Difficulty   `json:"difficulty"`
	HumanColor    domain.PlayerID     `json:"human_color"`
	Board         [][]domain.PlayerID `json:"board"`
	CurrentPlayer domain.PlayerID     `json:"current_player"`
	Status        domain.GameStatus   `json:"status"`
	Winner        domain.PlayerID     `json:"winner"`
	MoveCount     int                 `json:"move_count"`
}
