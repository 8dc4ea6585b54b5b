package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type ReviewRepository struct {
	Repository[entity.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (repository ReviewRepository) FindAllWithRelations(ctx context.Context, db *gorm.DB) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.WithContext(ctx).
		Preload("User").
		Preload("Popular").
		Preload("Available").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, errors.Wrap(err, "find reviews")
}

// Reviewed reports whether userID already reviewed the popular or the available.
// Exactly one of popularID and availableID is expected to be set.
func (repository ReviewRepository) Reviewed(ctx context.Context, db *gorm.DB, userID uint, popularID, availableID *uint) (bool, error) {
	query := db.WithContext(ctx).Model(&entity.Review{}).Where("user_id = ?", userID)
	switch {
	case popularID != nil:
		query = query.Where("popular_id = ?", *popularID)
	case availableID != nil:
		query = query.Where("available_id = ?", *availableID)
	default:
		return false, nil
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check review")
	}
	return count > 0, nil
}
