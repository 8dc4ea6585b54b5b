package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type CategoryRepository struct {
	Repository[entity.Category]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (repository CategoryRepository) FindAllWithPopulars(ctx context.Context, db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.WithContext(ctx).
		Preload("Populars", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("name ASC").
		Find(&categories).Error
	return categories, errors.Wrap(err, "find categories")
}

// NameTaken reports whether another category (any id but excludeID) already uses name.
// Pass excludeID 0 on create.
func (repository CategoryRepository) NameTaken(ctx context.Context, db *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&entity.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check category name")
	}
	return count > 0, nil
}

// Detach clears the category of every popular and available that points at it.
func (repository CategoryRepository) Detach(ctx context.Context, db *gorm.DB, categoryID uint) error {
	if err := db.WithContext(ctx).
		Model(&entity.Popular{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error; err != nil {
		return errors.Wrap(err, "detach populars")
	}
	err := db.WithContext(ctx).
		Model(&entity.Available{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
	return errors.Wrap(err, "detach availables")
}
