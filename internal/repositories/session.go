package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skosovan/data-analyzer/internal/logger"
)

// ErrSessionNotFound is returned when no live session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores one record per live session, keyed by the token's
// session ID. Deleting the record is what makes logout real: a signed token
// without a record is rejected by the auth middleware.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionRepository creates a session repository with the given TTL,
// which should match the token expiration.
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{client: client, exp: expiration}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save records a live session for a username.
func (r *SessionRepository) Save(ctx context.Context, sessionID, username string) error {
	err := r.client.Set(ctx, sessionKey(sessionID), username, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to save session", "session_id", sessionID, "error", err)
	}
	return err
}

// Get returns the username of a live session.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	username, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrSessionNotFound
		}
		logger.Log.Errorw("failed to read session", "session_id", sessionID, "error", err)
		return "", err
	}
	return username, nil
}

// Delete ends a session. Deleting an absent session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "error", err)
	}
	return err
}
