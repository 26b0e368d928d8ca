package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; when Redis
// is unreachable every login falls back to a full bcrypt comparison.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCredentials creates a hash of email+password for the cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// fingerprint identifies a stored password hash, so a cached credential
// check stops matching the moment the password is changed.
func fingerprint(passwordHash string) string {
	h := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(h[:])[:16]
}

// GetCachedAuth returns the cached user id for these credentials when the
// entry is still valid against the current password hash.
func GetCachedAuth(ctx context.Context, email, password, currentHash string) (int, bool) {
	if client == nil {
		return 0, false
	}
	val, err := client.Get(ctx, hashCredentials(email, password)).Result()
	if err != nil {
		return 0, false
	}
	parts := strings.SplitN(val, ":", 2)
	if len(parts) != 2 || parts[1] != fingerprint(currentHash) {
		return 0, false
	}
	userID, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches a successful credential check for 15 minutes
func CacheAuth(ctx context.Context, email, password, passwordHash string, userID int) {
	if client == nil {
		return
	}
	val := strconv.Itoa(userID) + ":" + fingerprint(passwordHash)
	client.Set(ctx, hashCredentials(email, password), val, 15*time.Minute)
}
