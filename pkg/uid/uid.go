package uid

import "github.com/google/uuid"

// NewGameID returns a unique identifier for a game session.
func NewGameID() string {
	return uuid.NewString()
}

// NewSessionID returns a unique identifier for a login session.
func NewSessionID() string {
	return uuid.NewString()
}
