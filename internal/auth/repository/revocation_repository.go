package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	authdomain "planner-backend/internal/auth/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// revocationRepository implements RevocationRepository on the token_blacklists table.
type revocationRepository struct {
	db *gorm.DB
}

func NewRevocationRepository(db *gorm.DB) RevocationRepository {
	return &revocationRepository{db: db}
}

// Revoke records a token as revoked. The insert is conditional on the digest, so of two
// concurrent calls for the same token exactly one reports true.
// Entries of this user whose tokens have expired anyway are purged in the same transaction.
func (r *revocationRepository) Revoke(ctx context.Context, userID uint, token string, expiresAt time.Time) (bool, error) {
	entry := &authdomain.TokenBlacklist{
		UserID:    userID,
		Token:     TokenDigest(token),
		ExpiresAt: expiresAt,
	}

	var inserted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND expires_at < ?", userID, time.Now()).
			Delete(&authdomain.TokenBlacklist{}).Error; err != nil {
			return err
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoNothing: true,
		}).Create(entry)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *revocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var entry authdomain.TokenBlacklist
	err := r.db.WithContext(ctx).Select("id").Where("token = ?", TokenDigest(token)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TokenDigest is the form in which tokens are stored and cached; raw bearer tokens never hit storage.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
