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
	errCategoryExists   = exception.BadRequest("category already exists")
	errCategoryNotFound = exception.NotFound("category not found")
)

type CategoryUsecaseImpl struct {
	*repository.CategoryRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewCategoryUsecase(categoryRepository *repository.CategoryRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) CategoryUsecase {
	return &CategoryUsecaseImpl{CategoryRepository: categoryRepository, Validate: validate, DB: DB, Log: logger}
}

func (uc *CategoryUsecaseImpl) GetCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := uc.CategoryRepository.FindAllWithPopulars(ctx, uc.DB)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to get categories")
		return nil, exception.Internal(err)
	}
	return categories, nil
}

func (uc *CategoryUsecaseImpl) CreateCategory(ctx context.Context, request *req.CategoryRequest) (*entity.Category, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	name := strings.TrimSpace(request.Name)

	taken, err := uc.CategoryRepository.NameTaken(ctx, uc.DB, name, 0)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if taken {
		return nil, errCategoryExists
	}

	category := &entity.Category{Name: name}
	if err := uc.CategoryRepository.Save(ctx, uc.DB, category); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errCategoryExists.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().Uint("categoryId", category.ID).Msg("category created")
	return category, nil
}

func (uc *CategoryUsecaseImpl) UpdateCategory(ctx context.Context, id uint, request *req.CategoryRequest) (*entity.Category, error) {
	category, err := uc.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}
	name := strings.TrimSpace(request.Name)

	taken, err := uc.CategoryRepository.NameTaken(ctx, uc.DB, name, id)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if taken {
		return nil, errCategoryExists
	}

	if err := uc.CategoryRepository.Updates(ctx, uc.DB, category, map[string]interface{}{"name": name}); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errCategoryExists.Wrap(err)
		}
		return nil, exception.Internal(err)
	}
	category.Name = name
	return category, nil
}

func (uc *CategoryUsecaseImpl) DeleteCategory(ctx context.Context, id uint) error {
	category, err := uc.findCategory(ctx, id)
	if err != nil {
		return err
	}

	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.CategoryRepository.Detach(ctx, tx, id); err != nil {
			return err
		}
		return uc.CategoryRepository.Delete(ctx, tx, category)
	})
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Uint("categoryId", id).Msg("failed to delete category")
		return exception.Internal(err)
	}
	return nil
}

func (uc *CategoryUsecaseImpl) findCategory(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	if err := uc.CategoryRepository.FindById(ctx, uc.DB, &category, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, errCategoryNotFound
		}
		return nil, exception.Internal(err)
	}
	return &category, nil
}
