package postgres

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	email TEXT UNIQUE,
	google_id TEXT UNIQUE,
	password_hash TEXT NOT NULL DEFAULT '',
	games_played INT NOT NULL DEFAULT 0,
	games_won INT NOT NULL DEFAULT 0,
	games_drawn INT NOT NULL DEFAULT 0,
	rating INT NOT NULL DEFAULT 1000,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_sessions (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
	session_id TEXT UNIQUE NOT NULL,
	device_info TEXT NOT NULL DEFAULT '',
	ip_address TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL,
	last_activity TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	player_id BIGINT NOT NULL REFERENCES players(id) ON DELETE CASCADE,
	player_username TEXT NOT NULL,
	bot_name TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	board_size INT NOT NULL,
	player_color INT NOT NULL,
	status TEXT NOT NULL,
	winner INT NOT NULL,
	total_moves INT NOT NULL,
	duration_seconds INT NOT NULL,
	moves JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_games_player ON games (player_id, finished_at DESC);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON user_sessions (user_id, is_active);
`

// RunMigrations creates the tables if they do not exist yet. The DDL is
// idempotent so it is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %v", err)
	}
	return nil
}
