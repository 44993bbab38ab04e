package http

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/internal/transport/http/middleware"
	"github.com/ashdev14/five-in-a-row/backend/pkg/auth"
	"github.com/ashdev14/five-in-a-row/backend/pkg/httputil"
	"github.com/ashdev14/five-in-a-row/backend/pkg/uid"
)

type AuthHandler struct {
	UserRepo    *postgres.UserRepo
	SessionRepo *postgres.SessionRepo
}

func NewAuthHandler(userRepo *postgres.UserRepo, sessionRepo *postgres.SessionRepo) *AuthHandler {
	return &AuthHandler{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Username) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be between 3 and 50 characters"})
		return
	}
	if domain.IsBotName(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is reserved"})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, _ := h.UserRepo.GetUserByUsername(req.Username)
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	hashedPwd, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	userID, err := h.UserRepo.CreateUser(req.Username, req.Name, hashedPwd, req.Email, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := h.openSession(c, userID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":       userID,
			"username": req.Username,
			"name":     req.Name,
			"email":    req.Email,
			"rating":   1000,
			"wins":     0,
			"losses":   0,
			"draws":    0,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.UserRepo.GetUserByUsername(strings.TrimSpace(req.Username))
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.openSession(c, user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.UserResponse(),
	})
}

// Guest issues a short-lived token with no backing session so people
// can play without an account. Guest games are never persisted.
func (h *AuthHandler) Guest(c *gin.Context) {
	guestID := -time.Now().UnixNano()
	username := "guest-" + uid.NewSessionID()[:8]

	token, err := auth.GenerateAccessToken(guestID, username, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	httputil.SetAuthCookie(c.Writer, token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       guestID,
			"username": username,
			"guest":    true,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenString, err := httputil.GetTokenFromRequest(c.Request); err == nil {
		if claims, err := auth.ValidateAccessToken(tokenString); err == nil && claims.SessionID != "" && h.SessionRepo != nil {
			if err := h.SessionRepo.DeactivateSession(claims.SessionID); err != nil {
				log.Printf("[AUTH] Failed to deactivate session: %v", err)
			}
		}
	}

	httputil.ClearAuthCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, username, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Guests have no database row
	if userID < 0 || h.UserRepo == nil {
		c.JSON(http.StatusOK, gin.H{
			"id":       userID,
			"username": username,
			"guest":    true,
		})
		return
	}

	user, err := h.UserRepo.GetUserByID(userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.UserResponse())
}

// openSession records a DB session (when a repo is wired) and returns
// a signed access token, setting the auth cookie on the way out.
func (h *AuthHandler) openSession(c *gin.Context, userID int64, username string) (string, error) {
	sessionID := ""
	if h.SessionRepo != nil {
		sessionID = uid.NewSessionID()
		expiresAt := time.Now().Add(30 * 24 * time.Hour)
		if err := h.SessionRepo.CreateSession(userID, sessionID, c.Request.UserAgent(), c.ClientIP(), expiresAt); err != nil {
			return "", err
		}
	}

	token, err := auth.GenerateAccessToken(userID, username, sessionID)
	if err != nil {
		return "", err
	}
	httputil.SetAuthCookie(c.Writer, token)
	return token, nil
}
