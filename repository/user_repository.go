package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"tour-booking-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

func (repository UserRepository) FindBySupabaseID(ctx context.Context, db *gorm.DB, supabaseID string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("supabase_id = ?", supabaseID).Take(&user).Error
	if err != nil {
		return nil, errors.Wrap(err, "find user by supabase id")
	}
	return &user, nil
}

// FindAllExcept lists every user but the given one, ordered by id.
func (repository UserRepository) FindAllExcept(ctx context.Context, db *gorm.DB, userID uint) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Where("id <> ?", userID).
		Order("id ASC").
		Find(&users).Error
	return users, errors.Wrap(err, "find users except")
}

func (repository UserRepository) EmailTakenByOther(ctx context.Context, db *gorm.DB, email string, userID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check email")
	}
	return count > 0, nil
}

func (repository UserRepository) ExistingSupabaseIDs(ctx context.Context, db *gorm.DB) (map[string]struct{}, error) {
	var ids []string
	if err := db.WithContext(ctx).Model(&entity.User{}).Pluck("supabase_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "pluck supabase ids")
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
