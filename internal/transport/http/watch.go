package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
)

type WatchHandler struct {
	SessionManager *game.SessionManager
}

func NewWatchHandler(sm *game.SessionManager) *WatchHandler {
	return &WatchHandler{SessionManager: sm}
}

// GetLiveGames returns all active games available for spectating
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.SessionManager.ActiveSessions())
}
