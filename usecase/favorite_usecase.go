package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
)

type FavoriteUsecase interface {
	GetFavorites(ctx context.Context, userID uint) ([]entity.Favorite, error)
	AddFavorite(ctx context.Context, userID uint, request *req.AddFavoriteRequest) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, popularID uint) error
}
