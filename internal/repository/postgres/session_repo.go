package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

type SessionRepo struct {
	DB *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{DB: db}
}

func (r *SessionRepo) CreateSession(userID int64, sessionID, deviceInfo, ipAddress string, expiresAt time.Time) error {
	query := `
	INSERT INTO user_sessions (user_id, session_id, device_info, ip_address, expires_at)
	VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.DB.Exec(query, userID, sessionID, deviceInfo, ipAddress, expiresAt); err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}
	return nil
}

func (r *SessionRepo) GetSessionByID(sessionID string) (*domain.UserSession, error) {
	query := `
	SELECT id, user_id, session_id, device_info, ip_address, created_at, expires_at, last_activity, is_active
	FROM user_sessions
	WHERE session_id = $1;
	`
	var session domain.UserSession
	err := r.DB.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.SessionID,
		&session.DeviceInfo,
		&session.IPAddress,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.LastActivity,
		&session.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}
	return &session, nil
}

func (r *SessionRepo) DeactivateSession(sessionID string) error {
	query := `UPDATE user_sessions SET is_active = FALSE WHERE session_id = $1;`
	if _, err := r.DB.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to deactivate session: %v", err)
	}
	return nil
}

func (r *SessionRepo) UpdateSessionActivity(sessionID string) error {
	query := `UPDATE user_sessions SET last_activity = NOW() WHERE session_id = $1;`
	if _, err := r.DB.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to update session activity: %v", err)
	}
	return nil
}

// CleanupOldSessions removes sessions older than daysToKeep and returns
// the number deleted.
func (r *SessionRepo) CleanupOldSessions(daysToKeep int) (int64, error) {
	query := `DELETE FROM user_sessions WHERE created_at < NOW() - ($1 || ' days')::INTERVAL;`
	result, err := r.DB.Exec(query, daysToKeep)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sessions: %v", err)
	}
	return result.RowsAffected()
}
