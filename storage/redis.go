package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

func InitializeRedis() {
	// Get Redis URL from environment, fallback to localhost for development
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	log.Println("Redis initialized with address:", redisURL)
}

// Advisory locks. Booking creation runs its availability check and insert
// under one lock per room, so two concurrent requests cannot both pass the
// check before either commits. Status changes take the reservation lock so
// two transitions against the same prior state cannot both succeed. The TTL
// bounds how long a crashed holder can block others.

func RoomLockKey(roomID uint) string {
	return fmt.Sprintf("lock:room:%d", roomID)
}

func ReservationLockKey(reservationID uint) string {
	return fmt.Sprintf("lock:reservation:%d", reservationID)
}

// AcquireLock takes the named lock if free. Returns false when someone else
// holds it; the caller should back off and report busy rather than wait.
func AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return Redis.SetNX(ctx, key, "1", ttl).Result()
}

func ReleaseLock(ctx context.Context, key string) {
	Redis.Del(ctx, key)
}

// CacheJSON stores a serialized payload with a TTL; used for report caching.
func CacheJSON(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	Redis.Set(ctx, key, payload, ttl)
}

// GetCachedJSON returns the cached payload, or nil when absent or expired.
func GetCachedJSON(ctx context.Context, key string) []byte {
	data, err := Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}
