package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type PopularRepository struct {
	Repository[entity.Popular]
}

func NewPopularRepository() *PopularRepository {
	return &PopularRepository{}
}

func (repository PopularRepository) FindAllWithCategory(ctx context.Context, db *gorm.DB) ([]entity.Popular, error) {
	var populars []entity.Popular
	err := db.WithContext(ctx).
		Preload("Category").
		Order("id ASC").
		Find(&populars).Error
	return populars, errors.Wrap(err, "find populars")
}

func (repository PopularRepository) FindDetail(ctx context.Context, db *gorm.DB, id uint) (*entity.Popular, error) {
	var popular entity.Popular
	err := db.WithContext(ctx).
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		Take(&popular).Error
	if err != nil {
		return nil, errors.Wrap(err, "find popular")
	}
	return &popular, nil
}

func (repository PopularRepository) TitleTaken(ctx context.Context, db *gorm.DB, title string, excludeID uint) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&entity.Popular{}).Where("title = ?", title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check popular title")
	}
	return count > 0, nil
}

// DeleteWithDependants removes the popular with its favorites and reviews. Run it inside a transaction.
func (repository PopularRepository) DeleteWithDependants(ctx context.Context, tx *gorm.DB, popular *entity.Popular) error {
	if err := tx.WithContext(ctx).Where("popular_id = ?", popular.ID).Delete(&entity.Favorite{}).Error; err != nil {
		return errors.Wrap(err, "delete favorites of popular")
	}
	if err := tx.WithContext(ctx).Where("popular_id = ?", popular.ID).Delete(&entity.Review{}).Error; err != nil {
		return errors.Wrap(err, "delete reviews of popular")
	}
	return errors.Wrap(tx.WithContext(ctx).Delete(popular).Error, "delete popular")
}

type AvailableRepository struct {
	Repository[entity.Available]
}

func NewAvailableRepository() *AvailableRepository {
	return &AvailableRepository{}
}

func (repository AvailableRepository) FindDetail(ctx context.Context, db *gorm.DB, id uint) (*entity.Available, error) {
	var available entity.Available
	err := db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		Take(&available).Error
	if err != nil {
		return nil, errors.Wrap(err, "find available")
	}
	return &available, nil
}

func (repository AvailableRepository) DeleteWithReviews(ctx context.Context, tx *gorm.DB, available *entity.Available) error {
	if err := tx.WithContext(ctx).Where("available_id = ?", available.ID).Delete(&entity.Review{}).Error; err != nil {
		return errors.Wrap(err, "delete reviews of available")
	}
	return errors.Wrap(tx.WithContext(ctx).Delete(available).Error, "delete available")
}
