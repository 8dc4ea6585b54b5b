package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
)

type ReviewUsecase interface {
	GetReviews(ctx context.Context) ([]entity.Review, error)
	CreateReview(ctx context.Context, request *req.CreateReviewRequest) (*entity.Review, error)
	UpdateReview(ctx context.Context, id uint, request *req.UpdateReviewRequest) (*entity.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}
