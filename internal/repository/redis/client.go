package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashdev14/five-in-a-row/backend/internal/config"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis initializes the Redis connection. Startup does not fail
// when Redis is unreachable; callers fall back to memory-only state.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: could not connect: %v. Running without cache.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

func IsRedisEnabled() bool {
	return redisEnabled
}

func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// GameCache stores live game snapshots so a restarted instance (or a
// reconnecting client) can recover in-progress games.
type GameCache struct {
	client *redis.Client
}

func NewGameCache(client *redis.Client) *GameCache {
	return &GameCache{client: client}
}

func gameKey(gameID string) string {
	return "game:" + gameID
}

func (c *GameCache) SaveSnapshot(ctx context.Context, gameID string, snapshot any, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal game snapshot: %v", err)
	}
	return c.client.Set(ctx, gameKey(gameID), data, ttl).Err()
}

func (c *GameCache) LoadSnapshot(ctx context.Context, gameID string, out any) (bool, error) {
	data, err := c.client.Get(ctx, gameKey(gameID)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal game snapshot: %v", err)
	}
	return true, nil
}

func (c *GameCache) DeleteSnapshot(ctx context.Context, gameID string) error {
	return c.client.Del(ctx, gameKey(gameID)).Err()
}
