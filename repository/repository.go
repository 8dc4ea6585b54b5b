package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Repository holds the CRUD calls shared by every model. The *gorm.DB is passed
// per call so usecases can hand in a transaction.
type Repository[T any] struct{}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return errors.Wrap(db.WithContext(ctx).Create(entity).Error, "repository: save")
}

// Updates applies only the given columns, so absent fields keep their values.
func (repo Repository[T]) Updates(ctx context.Context, db *gorm.DB, entity *T, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return errors.Wrap(db.WithContext(ctx).Model(entity).Updates(fields).Error, "repository: updates")
}

func (repo Repository[T]) Delete(ctx context.Context, db *gorm.DB, entity *T) error {
	return errors.Wrap(db.WithContext(ctx).Delete(entity).Error, "repository: delete")
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, entity *T, id uint) error {
	return errors.Wrap(db.WithContext(ctx).Where("id = ?", id).Take(entity).Error, "repository: find by id")
}

func (repo Repository[T]) FindAll(ctx context.Context, db *gorm.DB, entity *[]T) error {
	return errors.Wrap(db.WithContext(ctx).Order("id ASC").Find(entity).Error, "repository: find all")
}

func (repo Repository[T]) ExistsById(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "repository: exists by id")
	}
	return count > 0, nil
}
