package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

type GameRepo struct {
	DB *sql.DB
}

func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{DB: db}
}

// GameRecord is a finished game as stored in the games table.
type GameRecord struct {
	GameID          string            `json:"game_id"`
	PlayerID        int64             `json:"player_id"`
	PlayerUsername  string            `json:"player_username"`
	BotName         string            `json:"bot_name"`
	Difficulty      domain.Difficulty `json:"difficulty"`
	BoardSize       int               `json:"board_size"`
	PlayerColor     domain.PlayerID   `json:"player_color"`
	Status          domain.GameStatus `json:"status"`
	Winner          domain.PlayerID   `json:"winner"`
	TotalMoves      int               `json:"total_moves"`
	DurationSeconds int               `json:"duration_seconds"`
	Moves           []domain.Move     `json:"moves"`
	CreatedAt       time.Time         `json:"created_at"`
	FinishedAt      time.Time         `json:"finished_at"`
}

// SaveGame upserts a finished game record.
func (r *GameRepo) SaveGame(rec *GameRecord) error {
	movesJSON, err := json.Marshal(rec.Moves)
	if err != nil {
		return fmt.Errorf("failed to marshal moves: %v", err)
	}

	query := `
	INSERT INTO games (game_id, player_id, player_username, bot_name, difficulty, board_size, player_color, status, winner, total_moves, duration_seconds, moves, created_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (game_id) DO UPDATE SET
		status = EXCLUDED.status,
		winner = EXCLUDED.winner,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		moves = EXCLUDED.moves,
		finished_at = EXCLUDED.finished_at;
	`
	_, err = r.DB.Exec(query,
		rec.GameID, rec.PlayerID, rec.PlayerUsername, rec.BotName, string(rec.Difficulty),
		rec.BoardSize, int(rec.PlayerColor), string(rec.Status), int(rec.Winner),
		rec.TotalMoves, rec.DurationSeconds, movesJSON, rec.CreatedAt, rec.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game record: %v", err)
	}
	return nil
}

const gameColumns = `game_id, player_id, player_username, bot_name, difficulty, board_size, player_color, status, winner, total_moves, duration_seconds, moves, created_at, finished_at`

func scanGame(row interface{ Scan(dest ...any) error }) (*GameRecord, error) {
	var rec GameRecord
	var difficulty, status string
	var playerColor, winner int
	var movesJSON []byte
	err := row.Scan(
		&rec.GameID,
		&rec.PlayerID,
		&rec.PlayerUsername,
		&rec.BotName,
		&difficulty,
		&rec.BoardSize,
		&playerColor,
		&status,
		&winner,
		&rec.TotalMoves,
		&rec.DurationSeconds,
		&movesJSON,
		&rec.CreatedAt,
		&rec.FinishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}
	rec.Difficulty = domain.Difficulty(difficulty)
	rec.Status = domain.GameStatus(status)
	rec.PlayerColor = domain.PlayerID(playerColor)
	rec.Winner = domain.PlayerID(winner)
	if err := json.Unmarshal(movesJSON, &rec.Moves); err != nil {
		return nil, fmt.Errorf("failed to unmarshal moves: %v", err)
	}
	return &rec, nil
}

// GetHistory lists a user's finished games, most recent first.
func (r *GameRepo) GetHistory(userID int64, limit int) ([]*GameRecord, error) {
	rows, err := r.DB.Query(`
	SELECT `+gameColumns+`
	FROM games
	WHERE player_id = $1
	ORDER BY finished_at DESC
	LIMIT $2;`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %v", err)
	}
	defer rows.Close()

	records := []*GameRecord{}
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *GameRepo) GetGameByID(gameID string) (*GameRecord, error) {
	row := r.DB.QueryRow(`SELECT `+gameColumns+` FROM games WHERE game_id = $1;`, gameID)
	return scanGame(row)
}
