package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
)

type CategoryUsecase interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, request *req.CategoryRequest) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint, request *req.CategoryRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}
