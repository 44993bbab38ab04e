package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/config"
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
	"github.com/ashdev14/five-in-a-row/backend/internal/transport/http/middleware"
)

// GameHandler exposes the REST surface for human-vs-bot play. The
// WebSocket handler covers the same operations for clients that keep a
// live connection.
type GameHandler struct {
	Service *game.Service
}

func NewGameHandler(svc *game.Service) *GameHandler {
	return &GameHandler{Service: svc}
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	userID, username, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Difficulty string `json:"difficulty"`
		BoardSize  int    `json:"board_size"`
		Color      int    `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	difficulty, ok := domain.ParseDifficulty(req.Difficulty)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown difficulty"})
		return
	}

	boardSize := req.BoardSize
	if boardSize == 0 {
		boardSize = config.AppConfig.DefaultBoardSize
	}

	humanColor := domain.PlayerID(req.Color)
	if humanColor != domain.Black && humanColor != domain.White {
		humanColor = domain.Black
	}

	session, err := h.Service.StartGame(userID, username, difficulty, boardSize, humanColor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session.Snapshot())
}

func (h *GameHandler) GetGame(c *gin.Context) {
	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, exists := h.Service.Sessions.GetSessionByUserID(userID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active game"})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) MakeMove(c *gin.Context) {
	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, session, err := h.Service.PlayMove(userID, domain.Coordinate{Row: req.Row, Col: req.Col})
	if err != nil {
		status := http.StatusBadRequest
		if err == domain.ErrGameNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result,
		"game_id": session.GameID,
	})
}

func (h *GameHandler) Resign(c *gin.Context) {
	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.Resign(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) Leaderboard(c *gin.Context) {
	stats, err := h.Service.Leaderboard(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
