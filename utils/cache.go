package utils

import (
	"context"
	"log"
	"time"

	"aster/config"

	"github.com/go-redis/redis/v8"
)

// ProposalCacheClient holds pending meeting proposals between the moment the
// assistant drafts them and the user's confirm/cancel decision.
var ProposalCacheClient *redis.Client

// InitRedis initializes the Redis clients used by the service.
func InitRedis() {
	ProposalCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisProposalDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ProposalCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (proposals): %v", err)
	}
}

// GetProposalCacheClient returns the Redis client backing the proposal store.
func GetProposalCacheClient() *redis.Client {
	if ProposalCacheClient == nil {
		InitRedis()
	}
	return ProposalCacheClient
}
