package repository

import (
	"context"
	"testing"
	"time"

	authdomain "planner-backend/internal/auth/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRevocationRepository_RevokeAndCheck(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevocationRepository(db)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "token-a")
	if err != nil || revoked {
		t.Fatalf("fresh token reported revoked=%v err=%v", revoked, err)
	}

	exp := time.Now().Add(time.Hour)
	inserted, err := repo.Revoke(ctx, 1, "token-a", exp)
	if err != nil || !inserted {
		t.Fatalf("Revoke: inserted=%v err=%v", inserted, err)
	}
	inserted, err = repo.Revoke(ctx, 1, "token-a", exp)
	if err != nil {
		t.Fatalf("second Revoke should be a no-op, got %v", err)
	}
	if inserted {
		t.Error("second Revoke of the same token must report false")
	}

	revoked, err = repo.IsRevoked(ctx, "token-a")
	if err != nil || !revoked {
		t.Fatalf("expected token-a revoked, got revoked=%v err=%v", revoked, err)
	}

	var stored authdomain.TokenBlacklist
	db.First(&stored)
	if stored.Token == "token-a" {
		t.Error("raw token must not be stored")
	}
	var count int64
	db.Model(&authdomain.TokenBlacklist{}).Count(&count)
	if count != 1 {
		t.Errorf("expected one blacklist row, got %d", count)
	}
}

func TestRevocationRepository_PurgesExpiredEntries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRevocationRepository(db)
	ctx := context.Background()

	_, _ = repo.Revoke(ctx, 1, "old", time.Now().Add(-time.Minute))
	_, _ = repo.Revoke(ctx, 1, "new", time.Now().Add(time.Hour))

	if revoked, _ := repo.IsRevoked(ctx, "old"); revoked {
		t.Error("expected expired entry to be purged")
	}
	if revoked, _ := repo.IsRevoked(ctx, "new"); !revoked {
		t.Error("expected new entry to be present")
	}
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestCachedRevocationRepository(t *testing.T) {
	db := setupTestDB(t)
	client, mr := setupTestRedis(t)
	repo := NewCachedRevocationRepository(NewRevocationRepository(db), client)
	ctx := context.Background()

	if _, err := repo.Revoke(ctx, 3, "cached-token", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if !mr.Exists(revokedKeyPrefix + TokenDigest("cached-token")) {
		t.Fatal("expected revoked token to be cached in redis")
	}

	// Wipe redis: the database stays authoritative.
	mr.FlushAll()
	revoked, err := repo.IsRevoked(ctx, "cached-token")
	if err != nil || !revoked {
		t.Fatalf("expected database fallback to report revoked, got %v %v", revoked, err)
	}
	if !mr.Exists(revokedKeyPrefix + TokenDigest("cached-token")) {
		t.Error("expected positive lookup to repopulate the cache")
	}

	if revoked, _ := repo.IsRevoked(ctx, "other-token"); revoked {
		t.Error("unrelated token reported revoked")
	}
}

func TestCachedRevocationRepository_RedisDown(t *testing.T) {
	db := setupTestDB(t)
	client, mr := setupTestRedis(t)
	inner := NewRevocationRepository(db)
	repo := NewCachedRevocationRepository(inner, client)
	ctx := context.Background()

	_, _ = inner.Revoke(ctx, 1, "t", time.Now().Add(time.Hour))
	mr.Close()

	revoked, err := repo.IsRevoked(ctx, "t")
	if err != nil || !revoked {
		t.Fatalf("expected database answer when redis is down, got %v %v", revoked, err)
	}
}
