package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashdev14/five-in-a-row/backend/internal/config"
	"github.com/ashdev14/five-in-a-row/backend/internal/domain"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/pkg/auth"
	"github.com/ashdev14/five-in-a-row/backend/pkg/httputil"
	"github.com/ashdev14/five-in-a-row/backend/pkg/uid"
)

type OAuthHandler struct {
	UserRepo    *postgres.UserRepo
	SessionRepo *postgres.SessionRepo
	Config      *config.OAuthConfig
}

func NewOAuthHandler(userRepo *postgres.UserRepo, sessionRepo *postgres.SessionRepo, cfg *config.OAuthConfig) *OAuthHandler {
	return &OAuthHandler{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Config:      cfg,
	}
}

// GoogleLogin redirects the user to Google
func (h *OAuthHandler) GoogleLogin(c *gin.Context) {
	url := h.Config.GoogleLoginConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles the response from Google
func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	token, err := h.Config.GoogleLoginConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[OAUTH] Failed to exchange token: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/login?error=auth_failed")
		return
	}

	userInfo, err := config.GetGoogleUserInfo(token.AccessToken)
	if err != nil {
		log.Printf("[OAUTH] Failed to get user info: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/login?error=user_info_failed")
		return
	}

	user, err := h.UserRepo.GetUserByEmail(userInfo.Email)
	if err != nil {
		log.Printf("[OAUTH] Lookup by email failed: %v", err)
	}

	if user != nil {
		// Existing user: log them in, linking the Google ID if missing
		if !user.GoogleID.Valid {
			if err := h.UserRepo.UpdateUserGoogleID(userInfo.Email, userInfo.ID); err != nil {
				log.Printf("[OAUTH] Failed to link Google ID: %v", err)
			}
		}

		sessionID := uid.NewSessionID()
		expiresAt := time.Now().Add(30 * 24 * time.Hour)
		if err := h.SessionRepo.CreateSession(user.ID, sessionID, c.Request.UserAgent(), c.ClientIP(), expiresAt); err != nil {
			log.Printf("[OAUTH] Failed to create session: %v", err)
			c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/login?error=server_error")
			return
		}

		accessToken, err := auth.GenerateAccessToken(user.ID, user.Username, sessionID)
		if err != nil {
			c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/login?error=token_error")
			return
		}

		httputil.SetAuthCookie(c.Writer, accessToken)
		c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/dashboard")
		return
	}

	// New user: hand back a setup token so the frontend can ask for a
	// username before we create the row.
	setupToken, err := auth.GenerateSetupToken(userInfo.Email, userInfo.ID, userInfo.Name)
	if err != nil {
		log.Printf("[OAUTH] Failed to generate setup token: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/login?error=setup_failed")
		return
	}

	redirectURL := fmt.Sprintf("%s/complete-signup?token=%s&email=%s&name=%s",
		config.AppConfig.FrontendURL, setupToken, userInfo.Email, userInfo.Name)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

// CompleteGoogleSignup finishes the setup flow: validates the setup
// token, creates the user and opens a session.
func (h *OAuthHandler) CompleteGoogleSignup(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	claims, err := auth.ValidateSetupToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired setup token"})
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

	existing, _ := h.UserRepo.GetUserByUsername(req.Username)
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	userID, err := h.UserRepo.CreateUser(req.Username, claims.Name, "", claims.Email, claims.GoogleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	sessionID := uid.NewSessionID()
	expiresAt := time.Now().Add(30 * 24 * time.Hour)
	if err := h.SessionRepo.CreateSession(userID, sessionID, c.Request.UserAgent(), c.ClientIP(), expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	accessToken, err := auth.GenerateAccessToken(userID, req.Username, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	httputil.SetAuthCookie(c.Writer, accessToken)
	c.JSON(http.StatusCreated, gin.H{
		"token": accessToken,
		"user": gin.H{
			"id":       userID,
			"username": req.Username,
			"name":     claims.Name,
			"email":    claims.Email,
		},
	})
}
