package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
)

type AvailableUsecase interface {
	GetAvailables(ctx context.Context) ([]entity.Available, error)
	GetAvailableByID(ctx context.Context, id uint) (*entity.Available, error)
	CreateAvailable(ctx context.Context, request *req.CreateAvailableRequest) (*entity.Available, error)
	UpdateAvailable(ctx context.Context, id uint, request *req.UpdateAvailableRequest) (*entity.Available, error)
	DeleteAvailable(ctx context.Context, id uint) (*entity.Available, error)
}
