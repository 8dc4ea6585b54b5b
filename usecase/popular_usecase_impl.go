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
	errPopularExists   = exception.BadRequest("popular tour with this title already exists")
	errPopularNotFound = exception.NotFound("popular tour not found")
)

type PopularUsecaseImpl struct {
	*repository.PopularRepository
	Categories *repository.CategoryRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewPopularUsecase(popularRepository *repository.PopularRepository, categoryRepository *repository.CategoryRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) PopularUsecase {
	return &PopularUsecaseImpl{
		PopularRepository: popularRepository,
		Categories:        categoryRepository,
		Validate:          validate,
		DB:                DB,
		Log:               logger,
	}
}

func (uc *PopularUsecaseImpl) GetPopulars(ctx context.Context) ([]entity.Popular, error) {
	populars, err := uc.PopularRepository.FindAllWithCategory(ctx, uc.DB)
	if err != nil {
		return nil, exception.Internal(err)
	}
	return populars, nil
}

func (uc *PopularUsecaseImpl) GetPopularByID(ctx context.Context, id uint) (*entity.Popular, error) {
	popular, err := uc.PopularRepository.FindDetail(ctx, uc.DB, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errPopularNotFound
		}
		return nil, exception.Internal(err)
	}
	return popular, nil
}

func (uc *PopularUsecaseImpl) CreatePopular(ctx context.Context, request *req.CreatePopularRequest) (*entity.Popular, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	title := strings.TrimSpace(request.Title)

	taken, err := uc.PopularRepository.TitleTaken(ctx, uc.DB, title, 0)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if taken {
		return nil, errPopularExists
	}
	if err := ensureCategory(ctx, uc.DB, uc.Categories, request.CategoryID); err != nil {
		return nil, err
	}

	popular := &entity.Popular{
		Title:       title,
		Description: request.Description,
		Image:       request.Image,
		Price:       *request.Price,
		CategoryID:  request.CategoryID,
	}
	if err := uc.PopularRepository.Save(ctx, uc.DB, popular); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errPopularExists.Wrap(err)
		}
		if repository.IsForeignKeyConstraintViolation(err) {
			return nil, errCategoryNotFound.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Str("title", title).Msg("failed to create popular")
		return nil, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().Uint("popularId", popular.ID).Msg("popular created")
	return popular, nil
}

func (uc *PopularUsecaseImpl) UpdatePopular(ctx context.Context, id uint, request *req.UpdatePopularRequest) (*entity.Popular, error) {
	var popular entity.Popular
	if err := uc.PopularRepository.FindById(ctx, uc.DB, &popular, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errPopularNotFound
		}
		return nil, exception.Internal(err)
	}
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}

	fields := catalogFields(request.Title, request.Description, request.Image, request.Price, request.CategoryID)
	if title, ok := fields["title"].(string); ok {
		taken, err := uc.PopularRepository.TitleTaken(ctx, uc.DB, title, id)
		if err != nil {
			return nil, exception.Internal(err)
		}
		if taken {
			return nil, errPopularExists
		}
	}
	if err := ensureCategory(ctx, uc.DB, uc.Categories, request.CategoryID.Ptr()); err != nil {
		return nil, err
	}

	if err := uc.PopularRepository.Updates(ctx, uc.DB, &popular, fields); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errPopularExists.Wrap(err)
		}
		// the category can be deleted between ensureCategory and the write
		if repository.IsForeignKeyConstraintViolation(err) {
			return nil, errCategoryNotFound.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Uint("popularId", id).Msg("failed to update popular")
		return nil, exception.Internal(err)
	}
	return uc.GetPopularByID(ctx, id)
}

func (uc *PopularUsecaseImpl) DeletePopular(ctx context.Context, id uint) (*entity.Popular, error) {
	var popular entity.Popular
	if err := uc.PopularRepository.FindById(ctx, uc.DB, &popular, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errPopularNotFound
		}
		return nil, exception.Internal(err)
	}

	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return uc.PopularRepository.DeleteWithDependants(ctx, tx, &popular)
	})
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("popularId", id).Msg("failed to delete popular")
		return nil, exception.Internal(err)
	}
	return &popular, nil
}

// catalogFields collects the columns present in a partial catalog update.
// A null categoryId detaches the category.
func catalogFields(title, description, image *string, price *float64, categoryID req.OptionalID) map[string]interface{} {
	fields := map[string]interface{}{}
	if title != nil {
		fields["title"] = strings.TrimSpace(*title)
	}
	if description != nil {
		fields["description"] = *description
	}
	if image != nil {
		fields["image"] = *image
	}
	if price != nil {
		fields["price"] = *price
	}
	if value, ok := categoryID.Column(); ok {
		fields["category_id"] = value
	}
	return fields
}

func ensureCategory(ctx context.Context, db *gorm.DB, categories *repository.CategoryRepository, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	exists, err := categories.ExistsById(ctx, db, *categoryID)
	if err != nil {
		return exception.Internal(err)
	}
	if !exists {
		return errCategoryNotFound
	}
	return nil
}
