package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
)

// ConnectionManager handles active WebSocket connections thread-safely
type ConnectionManager struct {
	connections map[int64]*websocket.Conn
	usernames   map[int64]string

	// writeMu serializes writes per socket; conn.WriteJSON is not
	// safe for concurrent use.
	writeMu map[int64]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[int64]*websocket.Conn),
		usernames:   make(map[int64]string),
		writeMu:     make(map[int64]*sync.Mutex),
	}
}

// AddConnection registers a new connection, closing any previous one
// for the same user.
func (cm *ConnectionManager) AddConnection(userID int64, conn *websocket.Conn, username string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[userID]; exists {
		oldConn.Close()
	}

	cm.connections[userID] = conn
	cm.usernames[userID] = username
	cm.writeMu[userID] = &sync.Mutex{}
}

// RemoveConnectionIfMatching avoids the race where we would close a
// NEW connection while cleaning up an OLD one.
func (cm *ConnectionManager) RemoveConnectionIfMatching(userID int64, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[userID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, userID)
		delete(cm.usernames, userID)
		delete(cm.writeMu, userID)
	}
}

// SendMessage sends a JSON message to a specific user
func (cm *ConnectionManager) SendMessage(userID int64, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[userID]
	mu, muExists := cm.writeMu[userID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // User disconnected, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(message)
}

// GetUsername returns the username for a connected user
func (cm *ConnectionManager) GetUsername(userID int64) (string, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	name, exists := cm.usernames[userID]
	return name, exists
}
