package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                  string
	AllowedOrigins        []string
	FrontendURL           string
	DatabaseURL           string
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxLifetimeMin  int
	RedisURL              string
	RedisPassword         string
	KafkaBrokers          string
	KafkaTopic            string
	JWTSecret             string
	AccessTokenTTLMinutes int
	SessionTTLHours       int
	OAuthConfig           OAuthConfig

	// Engine tuning
	DefaultBoardSize int
	BotSearchDepth   int
	BotTopCandidates int

	// Lifecycle
	StaleGameTimeout time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	boardSize := GetEnvAsInt("DEFAULT_BOARD_SIZE", 15)
	if boardSize < 5 {
		log.Printf("DEFAULT_BOARD_SIZE %d too small, using 15", boardSize)
		boardSize = 15
	}

	AppConfig = &Config{
		Port:                  port,
		AllowedOrigins:        allowedOrigins,
		FrontendURL:           frontendURL,
		DatabaseURL:           GetEnv("DATABASE_URL", ""),
		DBMaxOpenConns:        GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:        GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin:  GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisURL:              GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:         GetEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:          GetEnv("KAFKA_BROKERS", ""),
		KafkaTopic:            GetEnv("KAFKA_TOPIC", "gomoku-events"),
		JWTSecret:             GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		AccessTokenTTLMinutes: GetEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60),
		SessionTTLHours:       GetEnvAsInt("SESSION_TTL_HOURS", 72),
		OAuthConfig:           *LoadOAuthConfig(),
		DefaultBoardSize:      boardSize,
		BotSearchDepth:        GetEnvAsInt("BOT_SEARCH_DEPTH", 2),
		BotTopCandidates:      GetEnvAsInt("BOT_TOP_CANDIDATES", 8),
		StaleGameTimeout:      time.Duration(GetEnvAsInt("STALE_GAME_TIMEOUT_MINUTES", 60)) * time.Minute,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
