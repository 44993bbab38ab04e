package postgres

import (
	"database/sql"
	"fmt"
	"time"
)

type UserRepo struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

type User struct {
	ID           int64
	Username     string
	Name         string
	Email        sql.NullString
	GoogleID     sql.NullString
	PasswordHash string
	GamesPlayed  int
	GamesWon     int
	GamesDrawn   int
	Rating       int
	CreatedAt    time.Time
}

// UserResponse returns a consistent JSON-friendly map of user data
func (u *User) UserResponse() map[string]interface{} {
	email := ""
	if u.Email.Valid {
		email = u.Email.String
	}
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"name":     u.Name,
		"email":    email,
		"rating":   u.Rating,
		"wins":     u.GamesWon,
		"losses":   u.GamesPlayed - u.GamesWon - u.GamesDrawn,
		"draws":    u.GamesDrawn,
	}
}

func (r *UserRepo) CreateUser(username, name, passwordHash, email, googleID string) (int64, error) {
	var emailParam, googleIDParam interface{}
	if email != "" {
		emailParam = email
	}
	if googleID != "" {
		googleIDParam = googleID
	}

	query := `
	INSERT INTO players (username, name, password_hash, email, google_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
	`
	var userID int64
	err := r.DB.QueryRow(query, username, name, passwordHash, emailParam, googleIDParam).Scan(&userID)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %v", err)
	}
	return userID, nil
}

const userColumns = `id, username, name, email, google_id, password_hash, games_played, games_won, games_drawn, rating, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.Email,
		&user.GoogleID,
		&user.PasswordHash,
		&user.GamesPlayed,
		&user.GamesWon,
		&user.GamesDrawn,
		&user.Rating,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %v", err)
	}
	return &user, nil
}

func (r *UserRepo) GetUserByID(id int64) (*User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM players WHERE id = $1;`, id)
	return scanUser(row)
}

func (r *UserRepo) GetUserByUsername(username string) (*User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM players WHERE username = $1;`, username)
	return scanUser(row)
}

func (r *UserRepo) GetUserByGoogleID(googleID string) (*User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM players WHERE google_id = $1;`, googleID)
	return scanUser(row)
}

func (r *UserRepo) GetUserByEmail(email string) (*User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM players WHERE email = $1;`, email)
	return scanUser(row)
}

// UpdateUserGoogleID links a Google account to an existing player row.
func (r *UserRepo) UpdateUserGoogleID(email, googleID string) error {
	if _, err := r.DB.Exec(`UPDATE players SET google_id = $2 WHERE email = $1;`, email, googleID); err != nil {
		return fmt.Errorf("failed to link google id: %v", err)
	}
	return nil
}

// RecordResult bumps the per-user counters and writes the new rating.
// won/drawn are mutually exclusive; both false means a loss.
func (r *UserRepo) RecordResult(userID int64, won, drawn bool, newRating int) error {
	query := `
	UPDATE players
	SET games_played = games_played + 1,
	    games_won = games_won + CASE WHEN $2 THEN 1 ELSE 0 END,
	    games_drawn = games_drawn + CASE WHEN $3 THEN 1 ELSE 0 END,
	    rating = $4
	WHERE id = $1;
	`
	if _, err := r.DB.Exec(query, userID, won, drawn, newRating); err != nil {
		return fmt.Errorf("failed to record result: %v", err)
	}
	return nil
}

type PlayerStats struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Rating   int    `json:"rating"`
	Wins     int    `json:"wins"`
	Played   int    `json:"played"`
}

func (r *UserRepo) Leaderboard(limit int) ([]PlayerStats, error) {
	rows, err := r.DB.Query(`
	SELECT username, rating, games_won, games_played
	FROM players
	ORDER BY rating DESC
	LIMIT $1;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %v", err)
	}
	defer rows.Close()

	stats := []PlayerStats{}
	rank := 1
	for rows.Next() {
		var s PlayerStats
		if err := rows.Scan(&s.Username, &s.Rating, &s.Wins, &s.Played); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %v", err)
		}
		s.Rank = rank
		rank++
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
