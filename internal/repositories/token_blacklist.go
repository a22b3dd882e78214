package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
)

const revokedTokenKeyPrefix = "revoked_token:"

// TokenBlacklistRepository remembers revoked session tokens in Redis until they expire.
type TokenBlacklistRepository struct {
	client *redis.Client
}

func NewTokenBlacklistRepository(client *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client}
}

// Revoke blacklists tokenID for ttl. Tokens that are already expired are skipped.
func (r *TokenBlacklistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenKeyPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"ttl", ttl,
		"result", "ok",
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokenID has been blacklisted.
func (r *TokenBlacklistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKeyPrefix + tokenID
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow(
		"redis command",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
