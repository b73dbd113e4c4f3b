package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/qa-forum/internal/logger"
)

// SessionRepository stores the session-id to user-id mapping in Redis.
// Entries expire together with the signed token, so an orphaned session never
// outlives its cookie.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new repository instance with the session TTL.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save records an active session for a user.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, userID int64) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), r.ttl).Err()

	logger.Log.Infow("session save",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Get returns the user id bound to a session, or 0 when the session does not
// exist (revoked or expired).
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (int64, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("session get",
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(val, 10, 64)
}

// Delete revokes a session. Deleting an absent session is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}
