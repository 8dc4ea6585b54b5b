package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type FavoriteRepository struct {
	Repository[entity.Favorite]
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

func (repository FavoriteRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uint) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := db.WithContext(ctx).
		Preload("Popular.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, errors.Wrap(err, "find favorites")
}

func (repository FavoriteRepository) Count(ctx context.Context, db *gorm.DB, userID, popularID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Where("user_id = ? AND popular_id = ?", userID, popularID).
		Count(&count).Error
	return count, errors.Wrap(err, "count favorites")
}

// Remove deletes the pair and returns how many rows went away.
func (repository FavoriteRepository) Remove(ctx context.Context, db *gorm.DB, userID, popularID uint) (int64, error) {
	result := db.WithContext(ctx).
		Where("user_id = ? AND popular_id = ?", userID, popularID).
		Delete(&entity.Favorite{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "remove favorite")
	}
	return result.RowsAffected, nil
}
