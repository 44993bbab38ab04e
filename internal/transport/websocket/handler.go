package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ashdev14/five-in-a-row/backend/internal/config"
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
	"github.com/ashdev14/five-in-a-row/backend/pkg/auth"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	GameService *game.Service
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, gs *game.Service) *Handler {
	return &Handler{
		ConnManager: cm,
		GameService: gs,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range config.AppConfig.AllowedOrigins {
					if allowed == origin {
						return true
					}
				}
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection and hands it to the message loop
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	// Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	// 1. Wait for initialization (auth)
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		conn.Close()
		return
	}

	var message domain.ClientMessage
	if err := json.Unmarshal(data, &message); err != nil {
		log.Printf("[WS] Invalid JSON during init: %v", err)
		conn.Close()
		return
	}

	if message.Type != "init" || message.JWT == "" {
		log.Printf("[WS] Missing initialization or token")
		conn.Close()
		return
	}

	claims, err := auth.ValidateAccessToken(message.JWT)
	if err != nil {
		log.Printf("[WS] Invalid token during init: %v", err)
		conn.WriteJSON(domain.ErrorMessage{Type: "error", Message: "Invalid token or session expired"})
		conn.Close()
		return
	}
	userID := claims.UserID
	username := claims.Username

	log.Printf("[WS] Connection initialized for user: %s (ID: %d)", username, userID)
	h.ConnManager.AddConnection(userID, conn, username)

	defer func() {
		log.Printf("[WS] Connection closed for user %s", username)
		h.ConnManager.RemoveConnectionIfMatching(userID, conn)
	}()

	// 2. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] User disconnected unexpectedly: %v", err)
			}
			break
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		h.processMessage(userID, username, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(userID int64, username string, msg domain.ClientMessage) {
	switch msg.Type {
	case "new_game":
		difficulty, ok := domain.ParseDifficulty(msg.Difficulty)
		if !ok {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{Type: "error", Message: "Unknown difficulty"})
			return
		}

		boardSize := msg.BoardSize
		if boardSize == 0 {
			boardSize = config.AppConfig.DefaultBoardSize
		}
		humanColor := domain.PlayerID(msg.Color)
		if humanColor != domain.Black && humanColor != domain.White {
			humanColor = domain.Black
		}

		session, err := h.GameService.StartGame(userID, username, difficulty, boardSize, humanColor)
		if err != nil {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{Type: "error", Message: err.Error()})
			return
		}
		h.ConnManager.SendMessage(userID, domain.ServerMessage{
			Type:    "game_created",
			GameID:  session.GameID,
			Payload: session.Snapshot(),
		})

	case "make_move":
		result, session, err := h.GameService.PlayMove(userID, domain.Coordinate{Row: msg.Row, Col: msg.Col})
		if err != nil {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{Type: "error", Message: err.Error()})
			return
		}
		h.ConnManager.SendMessage(userID, domain.ServerMessage{
			Type:    "move_played",
			GameID:  session.GameID,
			Payload: result,
		})
		if result.Status != domain.StatusActive {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{
				Type:    "game_over",
				GameID:  session.GameID,
				Payload: result,
			})
		}

	case "get_state":
		session, exists := h.GameService.Sessions.GetSessionByUserID(userID)
		if !exists {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{Type: "error", Message: "Game not found"})
			return
		}
		h.ConnManager.SendMessage(userID, domain.ServerMessage{
			Type:    "game_state",
			GameID:  session.GameID,
			Payload: session.Snapshot(),
		})

	case "resign":
		session, err := h.GameService.Resign(userID)
		if err != nil {
			h.ConnManager.SendMessage(userID, domain.ServerMessage{Type: "error", Message: err.Error()})
			return
		}
		h.ConnManager.SendMessage(userID, domain.ServerMessage{
			Type:    "game_over",
			GameID:  session.GameID,
			Payload: session.Snapshot(),
		})
	}
}
