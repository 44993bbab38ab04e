package cleanup

import (
	"log"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
)

type Worker struct {
	SessionManager    *game.SessionManager
	SessionRepository *postgres.SessionRepo
	StaleGameTimeout  time.Duration
}

func NewWorker(sm *game.SessionManager, sr *postgres.SessionRepo, staleGameTimeout time.Duration) *Worker {
	return &Worker{
		SessionManager:    sm,
		SessionRepository: sr,
		StaleGameTimeout:  staleGameTimeout,
	}
}

// Start initiates the background ticker
func (w *Worker) Start() {
	go w.runCleanup()

	// Then run periodically (every 1 hour)
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			w.runCleanup()
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	if removed := w.SessionManager.CleanupStale(w.StaleGameTimeout); removed > 0 {
		log.Printf("[CLEANUP] Abandoned %d stale games", removed)
	}

	if w.SessionRepository == nil {
		return
	}

	daysToKeep := 30 // Delete sessions older than 30 days
	deletedCount, err := w.SessionRepository.CleanupOldSessions(daysToKeep)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up DB sessions: %v", err)
	} else {
		if deletedCount > 0 {
			log.Printf("[CLEANUP] Removed %d expired sessions from database", deletedCount)
		}
	}
}
