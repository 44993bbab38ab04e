package game

import (
	"context"
	"log"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/analytics"
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
)

// GameRepository persists finished games.
type GameRepository interface {
	SaveGame(rec *postgres.GameRecord) error
	GetHistory(userID int64, limit int) ([]*postgres.GameRecord, error)
	GetGameByID(gameID string) (*postgres.GameRecord, error)
}

// UserRepository updates player stats after a game.
type UserRepository interface {
	GetUserByID(id int64) (*postgres.User, error)
	RecordResult(userID int64, won, drawn bool, newRating int) error
	Leaderboard(limit int) ([]postgres.PlayerStats, error)
}

// SnapshotCache keeps live game snapshots so reconnecting clients can
// recover an in-progress board.
type SnapshotCache interface {
	SaveSnapshot(ctx context.Context, gameID string, snapshot any, ttl time.Duration) error
	DeleteSnapshot(ctx context.Context, gameID string) error
}

const snapshotTTL = 24 * time.Hour

// Service is the game-facing facade: it owns the live sessions and
// wires finished games into persistence, ratings and analytics. Every
// dependency except the session manager may be nil; the service then
// runs memory-only.
type Service struct {
	Sessions *SessionManager
	games    GameRepository
	users    UserRepository
	cache    SnapshotCache
	producer *analytics.Producer
}

func NewService(sessions *SessionManager, games GameRepository, users UserRepository, cache SnapshotCache, producer *analytics.Producer) *Service {
	return &Service{
		Sessions: sessions,
		games:    games,
		users:    users,
		cache:    cache,
		producer: producer,
	}
}

// StartGame creates a fresh session for the user, abandoning any game
// they still had running.
func (s *Service) StartGame(userID int64, username string, difficulty domain.Difficulty, boardSize int, humanColor domain.PlayerID) (*GameSession, error) {
	session, err := s.Sessions.CreateSession(userID, username, difficulty, boardSize, humanColor)
	if err != nil {
		return nil, err
	}

	s.producer.Emit("game_started", map[string]any{
		"game_id":    session.GameID,
		"user_id":    userID,
		"difficulty": string(difficulty),
		"board_size": boardSize,
	})
	s.cacheSnapshot(session)
	return session, nil
}

// PlayMove applies the human move (and bot reply) on the user's live
// session. Finished games are persisted and removed from the manager.
func (s *Service) PlayMove(userID int64, c domain.Coordinate) (*MoveResult, *GameSession, error) {
	session, ok := s.Sessions.GetSessionByUserID(userID)
	if !ok {
		return nil, nil, domain.ErrGameNotFound
	}

	result, err := session.PlayHumanMove(c)
	if err != nil {
		return nil, session, err
	}

	s.producer.Emit("move_played", map[string]any{
		"game_id": session.GameID,
		"user_id": userID,
		"row":     c.Row,
		"col":     c.Col,
		"status":  string(result.Status),
	})

	if result.Status != domain.StatusActive {
		s.FinishGame(session)
	} else {
		s.cacheSnapshot(session)
	}
	return result, session, nil
}

// Resign ends the user's live game as a loss and persists it.
func (s *Service) Resign(userID int64) (*GameSession, error) {
	session, ok := s.Sessions.GetSessionByUserID(userID)
	if !ok {
		return nil, domain.ErrGameNotFound
	}

	session.mu.Lock()
	if session.Game.Status == domain.StatusActive {
		session.Game.Status = domain.StatusWon
		session.Game.Winner = session.BotColor()
	}
	session.mu.Unlock()

	s.FinishGame(session)
	return session, nil
}

// FinishGame persists the final record, adjusts the player's rating
// and drops the session. Persistence failures are logged, not
// returned; the game outcome already happened.
func (s *Service) FinishGame(session *GameSession) {
	defer func() {
		if s.cache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.cache.DeleteSnapshot(ctx, session.GameID); err != nil {
				log.Printf("[GAME] Failed to drop snapshot for %s: %v", session.GameID, err)
			}
			cancel()
		}
		s.Sessions.RemoveSession(session.GameID)
	}()

	session.mu.Lock()
	rec := &postgres.GameRecord{
		GameID:          session.GameID,
		PlayerID:        session.UserID,
		PlayerUsername:  session.Username,
		BotName:         session.BotName,
		Difficulty:      session.Difficulty,
		BoardSize:       domain.BoardSize(session.Game.Board),
		PlayerColor:     session.HumanColor,
		Status:          session.Game.Status,
		Winner:          session.Game.Winner,
		TotalMoves:      len(session.Game.Moves),
		DurationSeconds: int(time.Since(session.CreatedAt).Seconds()),
		Moves:           session.Game.Moves,
		CreatedAt:       session.CreatedAt,
		FinishedAt:      time.Now(),
	}
	won := session.Game.Status == domain.StatusWon && session.Game.Winner == session.HumanColor
	drawn := session.Game.Status == domain.StatusDraw
	session.mu.Unlock()

	s.producer.Emit("game_finished", map[string]any{
		"game_id":     rec.GameID,
		"user_id":     rec.PlayerID,
		"difficulty":  string(rec.Difficulty),
		"status":      string(rec.Status),
		"winner":      int(rec.Winner),
		"total_moves": rec.TotalMoves,
	})

	// Guests have no player row, so there is nothing to persist.
	if s.games == nil || s.users == nil || rec.PlayerID < 0 {
		return
	}

	if err := s.games.SaveGame(rec); err != nil {
		log.Printf("[GAME] Failed to save game %s: %v", rec.GameID, err)
	}

	user, err := s.users.GetUserByID(rec.PlayerID)
	if err != nil || user == nil {
		log.Printf("[GAME] Failed to load user %d for rating update: %v", rec.PlayerID, err)
		return
	}

	score := 0.0
	if won {
		score = 1.0
	} else if drawn {
		score = 0.5
	}
	newRating := domain.CalculateElo(user.Rating, domain.BotRatings[rec.Difficulty], score)
	if err := s.users.RecordResult(rec.PlayerID, won, drawn, newRating); err != nil {
		log.Printf("[GAME] Failed to record result for user %d: %v", rec.PlayerID, err)
		return
	}
	log.Printf("[GAME] %s finished: %s rating %d -> %d", rec.GameID, rec.PlayerUsername, user.Rating, newRating)
}

func (s *Service) History(userID int64, limit int) ([]*postgres.GameRecord, error) {
	if s.games == nil {
		return []*postgres.GameRecord{}, nil
	}
	return s.games.GetHistory(userID, limit)
}

func (s *Service) GameByID(gameID string) (*postgres.GameRecord, error) {
	if s.games == nil {
		return nil, nil
	}
	return s.games.GetGameByID(gameID)
}

func (s *Service) Leaderboard(limit int) ([]postgres.PlayerStats, error) {
	if s.users == nil {
		return []postgres.PlayerStats{}, nil
	}
	return s.users.Leaderboard(limit)
}

func (s *Service) cacheSnapshot(session *GameSession) {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.cache.SaveSnapshot(ctx, session.GameID, session.Snapshot(), snapshotTTL); err != nil {
		log.Printf("[GAME] Failed to cache snapshot for %s: %v", session.GameID, err)
	}
}
