package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ashdev14/five-in-a-row/backend/internal/analytics"
	"github.com/ashdev14/five-in-a-row/backend/internal/config"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/postgres"
	"github.com/ashdev14/five-in-a-row/backend/internal/repository/redis"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/bot"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/cleanup"
	"github.com/ashdev14/five-in-a-row/backend/internal/service/game"
	transportHttp "github.com/ashdev14/five-in-a-row/backend/internal/transport/http"
	"github.com/ashdev14/five-in-a-row/backend/internal/transport/http/middleware"
	"github.com/ashdev14/five-in-a-row/backend/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// Postgres is optional: without DATABASE_URL the server runs
	// memory-only (guest play, no history or ratings).
	var (
		gameRepo    *postgres.GameRepo
		userRepo    *postgres.UserRepo
		sessionRepo *postgres.SessionRepo
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		gameRepo = postgres.NewGameRepo(db)
		userRepo = postgres.NewUserRepo(db)
		sessionRepo = postgres.NewSessionRepo(db)
	} else {
		log.Println("DATABASE_URL not set, running memory-only")
	}

	if err := redis.InitRedis(cfg); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache *redis.GameCache
	if redis.IsRedisEnabled() {
		cache = redis.NewGameCache(redis.RedisClient)
	}

	producer := analytics.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	newEngine := func() *bot.Engine {
		return bot.NewEngineWith(bot.DefaultWeights(), cfg.BotSearchDepth, cfg.BotTopCandidates,
			rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	sessionManager := game.NewSessionManager(newEngine)

	var gameRepoIface game.GameRepository
	var userRepoIface game.UserRepository
	var cacheIface game.SnapshotCache
	if gameRepo != nil {
		gameRepoIface = gameRepo
	}
	if userRepo != nil {
		userRepoIface = userRepo
	}
	if cache != nil {
		cacheIface = cache
	}
	gameService := game.NewService(sessionManager, gameRepoIface, userRepoIface, cacheIface, producer)

	cleanupWorker := cleanup.NewWorker(sessionManager, sessionRepo, cfg.StaleGameTimeout)
	cleanupWorker.Start()

	connManager := websocket.NewConnectionManager()

	authHandler := transportHttp.NewAuthHandler(userRepo, sessionRepo)
	gameHandler := transportHttp.NewGameHandler(gameService)
	historyHandler := transportHttp.NewHistoryHandler(gameService)
	watchHandler := transportHttp.NewWatchHandler(sessionManager)
	wsHandler := websocket.NewHandler(connManager, gameService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	authMW := middleware.AuthMiddleware(sessionRepo)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/api/auth/guest", authHandler.Guest)
	router.GET("/api/leaderboard", gameHandler.Leaderboard)

	if userRepo != nil {
		router.POST("/api/auth/register", authHandler.Register)
		router.POST("/api/auth/login", authHandler.Login)

		oauthHandler := transportHttp.NewOAuthHandler(userRepo, sessionRepo, &cfg.OAuthConfig)
		router.GET("/api/auth/google/login", oauthHandler.GoogleLogin)
		router.GET("/api/auth/google/callback", oauthHandler.GoogleCallback)
		router.POST("/api/auth/google/complete", oauthHandler.CompleteGoogleSignup)
	}

	// Protected routes
	protected := router.Group("/")
	protected.Use(authMW)
	{
		protected.POST("/api/auth/logout", authHandler.Logout)
		protected.GET("/api/auth/me", authHandler.Me)

		protected.POST("/api/game", gameHandler.CreateGame)
		protected.GET("/api/game", gameHandler.GetGame)
		protected.POST("/api/game/move", gameHandler.MakeMove)
		protected.POST("/api/game/resign", gameHandler.Resign)

		protected.GET("/api/history", historyHandler.GetHistory)
		protected.GET("/api/history/:id", historyHandler.GetGameDetails)

		protected.GET("/api/watch", watchHandler.GetLiveGames)
	}

	// WebSocket route (auth handled inside the WS handler itself)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
