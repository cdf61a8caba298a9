package repository

import (
	"context"

	"warrantly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle flips the favorite mark for the target and returns the resulting
// membership: true when the target is now favorited. Runs in a transaction
// so a concurrent double toggle cannot create duplicate rows.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID string, t domain.FavoriteType, targetID string) (bool, error) {
	nowFavorite := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND type = ? AND target_id = ?", userID, t, targetID).
			Delete(&domain.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		nowFavorite = true
		return tx.Create(&domain.Favorite{
			ID:       uuid.NewString(),
			UserID:   userID,
			Type:     t,
			TargetID: targetID,
		}).Error
	})
	return nowFavorite, err
}

// Exists is a pure membership check.
func (r *FavoriteRepository) Exists(ctx context.Context, userID string, t domain.FavoriteType, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND type = ? AND target_id = ?", userID, t, targetID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) GetByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
