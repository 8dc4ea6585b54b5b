package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/dto/req"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	"tour-booking-api/repository"
)

var errAlreadyFavorite = exception.BadRequest("already in favorites")

type FavoriteUsecaseImpl struct {
	*repository.FavoriteRepository
	Populars *repository.PopularRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
}

func NewFavoriteUsecase(favoriteRepository *repository.FavoriteRepository, popularRepository *repository.PopularRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger) FavoriteUsecase {
	return &FavoriteUsecaseImpl{
		FavoriteRepository: favoriteRepository,
		Populars:           popularRepository,
		Validate:           validate,
		DB:                 DB,
		Log:                logger,
	}
}

func (uc *FavoriteUsecaseImpl) GetFavorites(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	favorites, err := uc.FavoriteRepository.FindByUser(ctx, uc.DB, userID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	return favorites, nil
}

func (uc *FavoriteUsecaseImpl) AddFavorite(ctx context.Context, userID uint, request *req.AddFavoriteRequest) (*entity.Favorite, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return nil, exception.FromValidator(err)
	}

	exists, err := uc.Populars.ExistsById(ctx, uc.DB, request.PopularID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if !exists {
		return nil, errPopularNotFound
	}

	count, err := uc.FavoriteRepository.Count(ctx, uc.DB, userID, request.PopularID)
	if err != nil {
		return nil, exception.Internal(err)
	}
	if count > 0 {
		return nil, errAlreadyFavorite
	}

	favorite := &entity.Favorite{UserID: userID, PopularID: request.PopularID}
	if err := uc.FavoriteRepository.Save(ctx, uc.DB, favorite); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return nil, errAlreadyFavorite.Wrap(err)
		}
		return nil, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().Uint("userId", userID).Uint("popularId", request.PopularID).Msg("favorite added")
	return favorite, nil
}

func (uc *FavoriteUsecaseImpl) RemoveFavorite(ctx context.Context, userID, popularID uint) error {
	removed, err := uc.FavoriteRepository.Remove(ctx, uc.DB, userID, popularID)
	if err != nil {
		return exception.Internal(err)
	}
	if removed == 0 {
		return exception.NotFound("favorite not found")
	}
	return nil
}
