package game

import (
	"log"
	"sync"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/bot"
)

// SessionManager tracks live sessions. One live game per user at a
// time; starting a new one abandons the previous session.
type SessionManager struct {
	sessions   map[string]*GameSession // keyed by game id
	userToGame map[int64]string        // user id to their live game
	mu         sync.RWMutex
	newEngine  func() *bot.Engine
}

func NewSessionManager(newEngine func() *bot.Engine) *SessionManager {
	if newEngine == nil {
		newEngine = bot.NewEngine
	}
	return &SessionManager{
		sessions:   make(map[string]*GameSession),
		userToGame: make(map[int64]string),
		newEngine:  newEngine,
	}
}

func (sm *SessionManager) CreateSession(userID int64, username string, difficulty domain.Difficulty, boardSize int, humanColor domain.PlayerID) (*GameSession, error) {
	session, err := NewGameSession(userID, username, difficulty, boardSize, humanColor, sm.newEngine())
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	if oldGameID, ok := sm.userToGame[userID]; ok {
		delete(sm.sessions, oldGameID)
	}
	sm.sessions[session.GameID] = session
	sm.userToGame[userID] = session.GameID
	sm.mu.Unlock()

	log.Printf("[SESSION] Created game %s: %s (ID: %d) vs %s [%s]",
		session.GameID, username, userID, session.BotName, difficulty)
	return session, nil
}

func (sm *SessionManager) GetSessionByUserID(userID int64) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	gameID, exists := sm.userToGame[userID]
	if !exists {
		return nil, false
	}
	session, exists := sm.sessions[gameID]
	return session, exists
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, ok := sm.sessions[gameID]; ok {
		delete(sm.userToGame, session.UserID)
		delete(sm.sessions, gameID)
	}
}

// ActiveSessions returns snapshots of every live game, for spectators.
func (sm *SessionManager) ActiveSessions() []GameSnapshot {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	snapshots := make([]GameSnapshot, 0, len(sessions))
	for _, s := range sessions {
		snapshots = append(snapshots, s.Snapshot())
	}
	return snapshots
}

// CleanupStale drops sessions idle longer than timeout and returns how
// many were removed.
func (sm *SessionManager) CleanupStale(timeout time.Duration) int {
	cutoff := time.Now().Add(-timeout)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for gameID, session := range sm.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(sm.userToGame, session.UserID)
			delete(sm.sessions, gameID)
			removed++
		}
	}
	return removed
}
