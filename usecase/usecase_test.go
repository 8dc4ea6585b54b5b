package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"tour-booking-api/config"
	"tour-booking-api/config/logger"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	mocks "tour-booking-api/mocks/security"
	"tour-booking-api/repository"
	"tour-booking-api/usecase"
	"tour-booking-api/util/testdb"
)

type fixture struct {
	ctx      context.Context
	db       *gorm.DB
	identity *mocks.IdentityProvider

	users         usecase.UserUsecase
	sync          usecase.UserSyncUsecase
	chat          usecase.ChatUsecase
	categories    usecase.CategoryUsecase
	populars      usecase.PopularUsecase
	availables    usecase.AvailableUsecase
	reviews       usecase.ReviewUsecase
	favorites     usecase.FavoriteUsecase
	notifications usecase.NotificationUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	identity := mocks.NewIdentityProvider(t)
	validate := config.NewValidator()
	log := logger.NewNopLogger()

	userRepository := repository.NewUserRepository()
	categoryRepository := repository.NewCategoryRepository()
	popularRepository := repository.NewPopularRepository()
	availableRepository := repository.NewAvailableRepository()

	return &fixture{
		ctx:      context.Background(),
		db:       db,
		identity: identity,

		users:         usecase.NewUserUsecase(userRepository, repository.NewSessionRepository(nil), validate, db, log, identity),
		sync:          usecase.NewUserSyncUsecase(userRepository, db, log, identity),
		chat:          usecase.NewChatUsecase(repository.NewChatRepository(), userRepository, validate, db, log),
		categories:    usecase.NewCategoryUsecase(categoryRepository, validate, db, log),
		populars:      usecase.NewPopularUsecase(popularRepository, categoryRepository, validate, db, log),
		availables:    usecase.NewAvailableUsecase(availableRepository, categoryRepository, validate, db, log),
		reviews:       usecase.NewReviewUsecase(repository.NewReviewRepository(), userRepository, popularRepository, availableRepository, validate, db, log),
		favorites:     usecase.NewFavoriteUsecase(repository.NewFavoriteRepository(), popularRepository, validate, db, log),
		notifications: usecase.NewNotificationUsecase(repository.NewNotificationRepository(), db, log),
	}
}

func (f *fixture) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user := &entity.User{SupabaseID: "sb-" + email, Email: email, Name: email}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) seedPopular(t *testing.T, title string) *entity.Popular {
	t.Helper()
	popular := &entity.Popular{Title: title, Price: 100}
	require.NoError(t, f.db.Create(popular).Error)
	return popular
}

// assertAppError checks the status and client message of a classified error.
func assertAppError(t *testing.T, err error, kind exception.Kind, message string) {
	t.Helper()
	appErr := exception.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func ptr[T any](v T) *T {
	return &v
}
