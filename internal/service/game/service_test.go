package game

import (
	"testing"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/bot"
)

type fakeGameRepo struct {
	saved []*postgres.GameRecord
}

func (f *fakeGameRepo) SaveGame(rec *postgres.GameRecord) error {
	f.saved = append(f.saved, rec)
	return nil
}

func (f *fakeGameRepo) GetHistory(userID int64, limit int) ([]*postgres.GameRecord, error) {
	out := []*postgres.GameRecord{}
	for _, rec := range f.saved {
		if rec.PlayerID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) GetGameByID(gameID string) (*postgres.GameRecord, error) {
	for _, rec := range f.saved {
		if rec.GameID == gameID {
			return rec, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	rating    int
	recorded  bool
	lastWon   bool
	lastDrawn bool
	newRating int
}

func (f *fakeUserRepo) GetUserByID(id int64) (*postgres.User, error) {
	return &postgres.User{ID: id, Username: "alice", Rating: f.rating}, nil
}

func (f *fakeUserRepo) RecordResult(userID int64, won, drawn bool, newRating int) error {
	f.recorded = true
	f.lastWon = won
	f.lastDrawn = drawn
	f.newRating = newRating
	return nil
}

func (f *fakeUserRepo) Leaderboard(limit int) ([]postgres.PlayerStats, error) {
	return []postgres.PlayerStats{{Rank: 1, Username: "alice", Rating: f.rating}}, nil
}

func newTestService(games GameRepository, users UserRepository) *Service {
	manager := NewSessionManager(func() *bot.Engine { return testEngine() })
	return NewService(manager, games, users, nil, nil)
}

func TestStartGameReplacesPreviousSession(t *testing.T) {
	svc := newTestService(nil, nil)

	first, err := svc.StartGame(1, "alice", domain.DifficultyEasy, 9, domain.Black)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	second, err := svc.StartGame(1, "alice", domain.DifficultyHard, 9, domain.Black)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	if _, ok := svc.Sessions.GetSessionByGameID(first.GameID); ok {
		t.Fatal("first session should be gone after starting a second game")
	}
	session, ok := svc.Sessions.GetSessionByUserID(1)
	if !ok || session.GameID != second.GameID {
		t.Fatal("user should be mapped to the second game")
	}
}

func TestPlayMoveWithoutGame(t *testing.T) {
	svc := newTestService(nil, nil)
	if _, _, err := svc.PlayMove(7, domain.Coordinate{Row: 0, Col: 0}); err != domain.ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestFinishGamePersistsAndRates(t *testing.T) {
	games := &fakeGameRepo{}
	users := &fakeUserRepo{rating: 1000}
	svc := newTestService(games, users)

	session, err := svc.StartGame(1, "alice", domain.DifficultyEasy, 9, domain.Black)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}

	// Force a human win and run the finish path directly.
	session.Game.Status = domain.StatusWon
	session.Game.Winner = domain.Black
	svc.FinishGame(session)

	if len(games.saved) != 1 {
		t.Fatalf("expected 1 saved game, got %d", len(games.saved))
	}
	rec := games.saved[0]
	if rec.Status != domain.StatusWon || rec.Winner != domain.Black {
		t.Fatalf("saved record has status=%v winner=%v", rec.Status, rec.Winner)
	}
	if rec.BoardSize != 9 {
		t.Fatalf("saved board size %d, want 9", rec.BoardSize)
	}

	if !users.recorded || !users.lastWon || users.lastDrawn {
		t.Fatalf("expected a recorded win, got recorded=%v won=%v drawn=%v", users.recorded, users.lastWon, users.lastDrawn)
	}
	want := domain.CalculateElo(1000, domain.BotRatings[domain.DifficultyEasy], 1.0)
	if users.newRating != want {
		t.Fatalf("new rating %d, want %d", users.newRating, want)
	}

	if _, ok := svc.Sessions.GetSessionByUserID(1); ok {
		t.Fatal("finished session should be removed from the manager")
	}
}

func TestResignCountsAsBotWin(t *testing.T) {
	games := &fakeGameRepo{}
	users := &fakeUserRepo{rating: 1200}
	svc := newTestService(games, users)

	if _, err := svc.StartGame(1, "alice", domain.DifficultyMedium, 9, domain.Black); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	session, err := svc.Resign(1)
	if err != nil {
		t.Fatalf("Resign: %v", err)
	}
	if session.Game.Winner != domain.White {
		t.Fatalf("resigning as black should hand the win to white, got %v", session.Game.Winner)
	}
	if !users.recorded || users.lastWon || users.lastDrawn {
		t.Fatal("resignation must be recorded as a loss")
	}
	if len(games.saved) != 1 {
		t.Fatalf("expected 1 saved game, got %d", len(games.saved))
	}
}

func TestMemoryOnlyServiceFinishesWithoutRepos(t *testing.T) {
	svc := newTestService(nil, nil)

	session, err := svc.StartGame(1, "alice", domain.DifficultyEasy, 9, domain.Black)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	session.Game.Status = domain.StatusDraw
	svc.FinishGame(session)

	history, err := svc.History(1, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("memory-only history should be empty, got %d", len(history))
	}
}

func TestCleanupStaleDropsIdleSessions(t *testing.T) {
	svc := newTestService(nil, nil)

	stale, err := svc.StartGame(1, "alice", domain.DifficultyEasy, 9, domain.Black)
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if _, err := svc.StartGame(2, "bob", domain.DifficultyEasy, 9, domain.Black); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	stale.LastActivity = time.Now().Add(-2 * time.Hour)

	removed := svc.Sessions.CleanupStale(time.Hour)
	if removed != 1 {
		t.Fatalf("expected 1 stale session removed, got %d", removed)
	}
	if _, ok := svc.Sessions.GetSessionByUserID(1); ok {
		t.Fatal("stale session should be gone")
	}
	if _, ok := svc.Sessions.GetSessionByUserID(2); !ok {
		t.Fatal("fresh session should survive cleanup")
	}
}
