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

var errAvailableNotFound = exception.NotFound("available tour not found")

type AvailableUsecaseImpl struct {
	*repository.AvailableRepository
	Categories *repository.CategoryRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewAvailableUsecase(availableRepository *repository.AvailableRepository, categoryRepository *repository.CategoryRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) AvailableUsecase {
	return &AvailableUsecaseImpl{
		AvailableRepository: availableRepository,
		Categories:          categoryRepository,
		Validate:            validate,
		DB:                  DB,
		Log:                 logger,
	}
}

func (uc *AvailableUsecaseImpl) GetAvailables(ctx context.Context) ([]entity.Available, error) {
	var availables []entity.Available
	if err := uc.AvailableRepository.FindAll(ctx, uc.DB, &availables); err != nil {
		return nil, exception.Internal(err)
	}
	return availables, nil
}

func (uc *AvailableUsecaseImpl) GetAvailableByID(ctx context.Context, id uint) (*entity.Available, error) {
	available, err := uc.AvailableRepository.FindDetail(ctx, uc.DB, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errAvailableNotFound
		}
		return nil, exception.Internal(err)
	}
	return available, nil
}

func (uc *AvailableUsecaseImpl) CreateAvailable(ctx context.Context, request *req.CreateAvailableRequest) (*entity.Available, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	if err := ensureCategory(ctx, uc.DB, uc.Categories, request.CategoryID); err != nil {
		return nil, err
	}

	available := &entity.Available{
		Title:       strings.TrimSpace(request.Title),
		Description: request.Description,
		Image:       request.Image,
		Price:       *request.Price,
		CategoryID:  request.CategoryID,
	}
	if err := uc.AvailableRepository.Save(ctx, uc.DB, available); err != nil {
		if repository.IsForeignKeyConstraintViolation(err) {
			return nil, errCategoryNotFound.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Msg("failed to create available")
		return nil, exception.Internal(err)
	}
	return available, nil
}

func (uc *AvailableUsecaseImpl) UpdateAvailable(ctx context.Context, id uint, request *req.UpdateAvailableRequest) (*entity.Available, error) {
	var available entity.Available
	if err := uc.AvailableRepository.FindById(ctx, uc.DB, &available, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errAvailableNotFound
		}
		return nil, exception.Internal(err)
	}
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	if err := ensureCategory(ctx, uc.DB, uc.Categories, request.CategoryID.Ptr()); err != nil {
		return nil, err
	}

	fields := catalogFields(request.Title, request.Description, request.Image, request.Price, request.CategoryID)
	if err := uc.AvailableRepository.Updates(ctx, uc.DB, &available, fields); err != nil {
		if repository.IsForeignKeyConstraintViolation(err) {
			return nil, errCategoryNotFound.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Uint("availableId", id).Msg("failed to update available")
		return nil, exception.Internal(err)
	}
	return uc.GetAvailableByID(ctx, id)
}

func (uc *AvailableUsecaseImpl) DeleteAvailable(ctx context.Context, id uint) (*entity.Available, error) {
	var available entity.Available
	if err := uc.AvailableRepository.FindById(ctx, uc.DB, &available, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errAvailableNotFound
		}
		return nil, exception.Internal(err)
	}

	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return uc.AvailableRepository.DeleteWithReviews(ctx, tx, &available)
	})
	if err != nil {
		return nil, exception.Internal(err)
	}
	return &available, nil
}
