// File: utils/cache.go
package utils

import (
	"barberdesk/config"
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// AuthCachePrefix is the prefix used for Redis session token hash keys.
	AuthCachePrefix = "auth:"
	// AuthCacheTTL matches the session token lifetime.
	AuthCacheTTL = 72 * time.Hour
)

var (
	// AuthCacheClient is the dedicated client for session token caching.
	AuthCacheClient *redis.Client
	// ReportCacheClient is the dedicated client for daily report caching.
	ReportCacheClient *redis.Client
)

// InitAuthCache initializes the Redis client for session token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for session token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitReportCache initializes the Redis client for report caching.
func InitReportCache() {
	ReportCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReportDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReportCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Report Cache): %v", err)
	}
}

// GetReportCacheClient returns the Redis client for report caching.
func GetReportCacheClient() *redis.Client {
	if ReportCacheClient == nil {
		InitReportCache()
	}
	return ReportCacheClient
}

// CacheAuthToken stores the hash of an issued session token so it can be
// checked and revoked later.
func CacheAuthToken(client *redis.Client, userID, tokenHash string) error {
	ctx := context.Background()
	return client.Set(ctx, AuthCachePrefix+userID, tokenHash, AuthCacheTTL).Err()
}

// GetCachedAuthToken returns the cached token hash for a user, or an empty
// string when no session is active.
func GetCachedAuthToken(client *redis.Client, userID string) (string, error) {
	ctx := context.Background()
	hash, err := client.Get(ctx, AuthCachePrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	return hash, err
}

// RevokeAuthToken drops the cached token hash, invalidating the session.
func RevokeAuthToken(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthCachePrefix+userID).Err()
}
