package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	revokedSessionPrefix = "session:revoked:"
	identityPrefix       = "identity:"
	identityTTL          = 10 * time.Minute
)

// SessionRepository keeps revoked sessions and the identity cache in Redis.
// Every method is a no-op when the client is nil.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Revoke marks the session as signed out until ttl passes. Non-positive ttls are ignored.
func (r *SessionRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if !r.Enabled() || sessionID == "" || ttl <= 0 {
		return nil
	}
	err := r.client.Set(ctx, revokedSessionPrefix+sessionID, "1", ttl).Err()
	return errors.Wrap(err, "revoke session")
}

func (r *SessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if !r.Enabled() || sessionID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedSessionPrefix+sessionID).Result()
	if err != nil {
		return false, errors.Wrap(err, "check revoked session")
	}
	return n > 0, nil
}

// CacheUserID remembers the local user id of an identity-provider subject.
func (r *SessionRepository) CacheUserID(ctx context.Context, subject string, userID uint) error {
	if !r.Enabled() {
		return nil
	}
	err := r.client.Set(ctx, identityPrefix+subject, strconv.FormatUint(uint64(userID), 10), identityTTL).Err()
	return errors.Wrap(err, "cache identity")
}

// CachedUserID returns 0 on a cache miss.
func (r *SessionRepository) CachedUserID(ctx context.Context, subject string) (uint, error) {
	if !r.Enabled() {
		return 0, nil
	}
	val, err := r.client.Get(ctx, identityPrefix+subject).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "read identity cache")
	}
	return uint(val), nil
}

func (r *SessionRepository) EvictUserID(ctx context.Context, subject string) error {
	if !r.Enabled() {
		return nil
	}
	return errors.Wrap(r.client.Del(ctx, identityPrefix+subject).Err(), "evict identity")
}
