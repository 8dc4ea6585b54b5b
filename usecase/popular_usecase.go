package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
)

type PopularUsecase interface {
	GetPopulars(ctx context.Context) ([]entity.Popular, error)
	GetPopularByID(ctx context.Context, id uint) (*entity.Popular, error)
	CreatePopular(ctx context.Context, request *req.CreatePopularRequest) (*entity.Popular, error)
	UpdatePopular(ctx context.Context, id uint, request *req.UpdatePopularRequest) (*entity.Popular, error)
	// DeletePopular returns the row as it was before deletion.
	DeletePopular(ctx context.Context, id uint) (*entity.Popular, error)
}
