package repository

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// cachedRevocationRepository fronts a RevocationRepository with Redis.
// Only positive results are cached, so a revocation written by another instance is
// still seen through the database.
type cachedRevocationRepository struct {
	next   RevocationRepository
	client *redis.Client
}

func NewCachedRevocationRepository(next RevocationRepository, client *redis.Client) RevocationRepository {
	return &cachedRevocationRepository{next: next, client: client}
}

func (r *cachedRevocationRepository) Revoke(ctx context.Context, userID uint, token string, expiresAt time.Time) (bool, error) {
	inserted, err := r.next.Revoke(ctx, userID, token, expiresAt)
	if err != nil {
		return false, err
	}
	r.remember(ctx, token, time.Until(expiresAt))
	return inserted, nil
}

func (r *cachedRevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, revokedKeyPrefix+TokenDigest(token)).Err()
	switch {
	case err == nil:
		return true, nil
	case err != redis.Nil:
		log.Printf("[Auth] redis revocation lookup failed, falling back to database: %v", err)
	}

	revoked, err := r.next.IsRevoked(ctx, token)
	if err != nil {
		return false, err
	}
	if revoked {
		r.remember(ctx, token, time.Hour)
	}
	return revoked, nil
}

func (r *cachedRevocationRepository) remember(ctx context.Context, token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+TokenDigest(token), "1", ttl).Err(); err != nil {
		log.Printf("[Auth] failed to cache revoked token: %v", err)
	}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
