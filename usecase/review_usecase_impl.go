package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	"tour-booking-api/repository"
)

var (
	errAlreadyReviewed = exception.BadRequest("already reviewed")
	errReviewNotFound  = exception.NotFound("review not found")
)

type ReviewUsecaseImpl struct {
	*repository.ReviewRepository
	Users      *repository.UserRepository
	Populars   *repository.PopularRepository
	Availables *repository.AvailableRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewReviewUsecase(reviewRepository *repository.ReviewRepository, userRepository *repository.UserRepository, popularRepository *repository.PopularRepository, availableRepository *repository.AvailableRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) ReviewUsecase {
	return &ReviewUsecaseImpl{
		ReviewRepository: reviewRepository,
		Users:            userRepository,
		Populars:         popularRepository,
		Availables:       availableRepository,
		Validate:         validate,
		DB:               DB,
		Log:              logger,
	}
}

func (uc *ReviewUsecaseImpl) GetReviews(ctx context.Context) ([]entity.Review, error) {
	reviews, err := uc.ReviewRepository.FindAllWithRelations(ctx, uc.DB)
	if err != nil {
		return nil, exception.Internal(err)
	}
	return reviews, nil
}

func (uc *ReviewUsecaseImpl) CreateReview(ctx context.Context, request *req.CreateReviewRequest) (*entity.Review, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	switch {
	case request.PopularID == nil && request.AvailableID == nil:
		return nil, exception.BadRequest("popularId or availableId is required")
	case request.PopularID != nil && request.AvailableID != nil:
		return nil, exception.BadRequest("a review targets either a popular or an available tour")
	}

	if err := uc.ensureExists(ctx, request); err != nil {
		return nil, err
	}

	reviewed, err := uc.ReviewRepository.Reviewed(ctx, uc.DB, request.UserID, request.PopularID, request.AvailableID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if reviewed {
		return nil, errAlreadyReviewed
	}

	review := &entity.Review{
		Rating:      request.Rating,
		Comment:     strings.TrimSpace(request.Comment),
		UserID:      request.UserID,
		PopularID:   request.PopularID,
		AvailableID: request.AvailableID,
	}
	if err := uc.ReviewRepository.Save(ctx, uc.DB, review); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errAlreadyReviewed.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Uint("userId", request.UserID).Msg("failed to create review")
		return nil, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().Uint("reviewId", review.ID).Int("rating", review.Rating).Msg("review created")
	return review, nil
}

func (uc *ReviewUsecaseImpl) ensureExists(ctx context.Context, request *req.CreateReviewRequest) error {
	exists, err := uc.Users.ExistsById(ctx, uc.DB, request.UserID)
	if err != nil {
		return exception.Internal(err)
	}
	if !exists {
		return errNoUser
	}

	if request.PopularID != nil {
		exists, err = uc.Populars.ExistsById(ctx, uc.DB, *request.PopularID)
		if err == nil && !exists {
			return errPopularNotFound
		}
	} else {
		exists, err = uc.Availables.ExistsById(ctx, uc.DB, *request.AvailableID)
		if err == nil && !exists {
			return errAvailableNotFound
		}
	}
	if err != nil {
		return exception.Internal(err)
	}
	return nil
}

func (uc *ReviewUsecaseImpl) UpdateReview(ctx context.Context, id uint, request *req.UpdateReviewRequest) (*entity.Review, error) {
	review, err := uc.findReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}

	fields := map[string]interface{}{}
	if request.Rating != nil {
		fields["rating"] = *request.Rating
		review.Rating = *request.Rating
	}
	if request.Comment != nil {
		comment := strings.TrimSpace(*request.Comment)
		fields["comment"] = comment
		review.Comment = comment
	}
	if err := uc.ReviewRepository.Updates(ctx, uc.DB, review, fields); err != nil {
		return nil, exception.Internal(err)
	}
	return review, nil
}

func (uc *ReviewUsecaseImpl) DeleteReview(ctx context.Context, id uint) error {
	review, err := uc.findReview(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.ReviewRepository.Delete(ctx, uc.DB, review); err != nil {
		return exception.Internal(err)
	}
	return nil
}

func (uc *ReviewUsecaseImpl) findReview(ctx context.Context, id uint) (*entity.Review, error) {
	var review entity.Review
	if err := uc.ReviewRepository.FindById(ctx, uc.DB, &review, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errReviewNotFound
		}
		return nil, exception.Internal(err)
	}
	return &review, nil
}
