package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/curioyard/studio-api/internal/domain"
)

// SequenceRepository handles the per-user document counters. The invoice
// and contract ledgers keep entirely independent counters; deletes never
// release a consumed value.
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new SequenceRepository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next atomically increments and returns the counter for a user/kind.
// A row lock inside the transaction keeps two sessions of the same user
// from ever being handed the same value. If no counter exists yet it is
// created and 1 is returned.
func (r *SequenceRepository) Next(ctx context.Context, userID string, kind domain.SequenceKind) (int, error) {
	var seq domain.DocumentSequence
	var next int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND kind = ?", userID, kind).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.DocumentSequence{
				ID:        uuid.New(),
				UserID:    userID,
				Kind:      kind,
				LastValue: 1,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create document sequence: %w", err)
			}
			next = 1
		} else if result.Error != nil {
			return fmt.Errorf("failed to get document sequence: %w", result.Error)
		} else {
			next = seq.LastValue + 1
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_value": next,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update document sequence: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return next, nil
}

// Current returns the last consumed value without incrementing. Returns 0
// when no counter exists yet, so the next allocation will hand out 1.
func (r *SequenceRepository) Current(ctx context.Context, userID string, kind domain.SequenceKind) (int, error) {
	var seq domain.DocumentSequence
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		First(&seq)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get document sequence: %w", result.Error)
	}

	return seq.LastValue, nil
}

// Set raises the counter to a specific value, used when importing ledgers
// that already contain numbered records. The counter never moves backward.
func (r *SequenceRepository) Set(ctx context.Context, userID string, kind domain.SequenceKind, value int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq domain.DocumentSequence
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND kind = ?", userID, kind).
			First(&seq)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			seq = domain.DocumentSequence{
				ID:        uuid.New(),
				UserID:    userID,
				Kind:      kind,
				LastValue: value,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create document sequence: %w", err)
			}
			return nil
		}
		if result.Error != nil {
			return fmt.Errorf("failed to get document sequence: %w", result.Error)
		}

		if value > seq.LastValue {
			if err := tx.Model(&seq).Updates(map[string]interface{}{
				"last_value": value,
				"updated_at": time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("failed to update document sequence: %w", err)
			}
		}
		return nil
	})
}
