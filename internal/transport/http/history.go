package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
	"github.com/ashdev14/five-in-a-row/backend/internal/transport/http/middleware"
)

type HistoryHandler struct {
	Service *game.Service
}

func NewHistoryHandler(svc *game.Service) *HistoryHandler {
	return &HistoryHandler{Service: svc}
}

type historyItem struct {
	ID         string    `json:"id"`
	BotName    string    `json:"botName"`
	Difficulty string    `json:"difficulty"`
	Result     string    `json:"result"` // "win", "loss", "draw"
	MovesCount int       `json:"movesCount"`
	BoardSize  int       `json:"boardSize"`
	FinishedAt time.Time `json:"finishedAt"`
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	records, err := h.Service.History(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	history := make([]historyItem, 0, len(records))
	for _, rec := range records {
		item := historyItem{
			ID:         rec.GameID,
			BotName:    rec.BotName,
			Difficulty: string(rec.Difficulty),
			MovesCount: rec.TotalMoves,
			BoardSize:  rec.BoardSize,
			FinishedAt: rec.FinishedAt,
		}
		switch {
		case rec.Status == domain.StatusDraw:
			item.Result = "draw"
		case rec.Winner == rec.PlayerColor:
			item.Result = "win"
		default:
			item.Result = "loss"
		}
		history = append(history, item)
	}

	c.JSON(http.StatusOK, history)
}

func (h *HistoryHandler) GetGameDetails(c *gin.Context) {
	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rec, err := h.Service.GameByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}
	if rec == nil || rec.PlayerID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
