package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/entity"
	"tour-booking-api/exception"
	"tour-booking-api/repository"
	"tour-booking-api/security"
	"tour-booking-api/util"
)

var (
	errEmailTaken = exception.BadRequest("email is already registered")
	errNoUser     = exception.NotFound("user not found")
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	Sessions *repository.SessionRepository
	*validator.Validate
	*gorm.DB
	Log      *logger.AppLogger
	Identity security.IdentityProvider
}

func NewUserUsecase(userRepository *repository.UserRepository, sessions *repository.SessionRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, identity security.IdentityProvider) UserUsecase {
	return &UserUsecaseImpl{
		UserRepository: userRepository,
		Sessions:       sessions,
		Validate:       validate,
		DB:             DB,
		Log:            logger,
		Identity:       identity,
	}
}

func (uc *UserUsecaseImpl) SignUp(ctx context.Context, request *req.SignUpRequest) (res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.AuthResponse{}, exception.FromValidator(err)
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))
	name := strings.TrimSpace(request.Name)

	// a local row with this email but another identity would be unreachable
	if _, err := uc.UserRepository.FindByEmail(ctx, uc.DB, email); err == nil {
		return res.AuthResponse{}, errEmailTaken
	} else if !repository.IsNotFound(err) {
		return res.AuthResponse{}, exception.Internal(err)
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.AuthResponse{}, exception.Internal(err)
	}

	identity, session, err := uc.Identity.SignUp(ctx, email, request.Password, name)
	if err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Str("email", email).Msg("identity provider rejected sign up")
		return res.AuthResponse{}, exception.BadRequest("failed to register user").Wrap(err)
	}

	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	user, err := uc.UserRepository.FindBySupabaseID(ctx, trx, identity.ID)
	if repository.IsNotFound(err) {
		user = &entity.User{
			SupabaseID: identity.ID,
			Email:      email,
			Name:       name,
			Password:   hashPassword,
		}
		err = uc.UserRepository.Save(ctx, trx, user)
	}
	if err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return res.AuthResponse{}, errEmailTaken.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Str("email", email).Msg("failed to save user")
		return res.AuthResponse{}, exception.Internal(err)
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to commit user")
		return res.AuthResponse{}, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().
		Uint("userId", user.ID).
		Str("supabaseId", user.SupabaseID).
		Msg("user signed up")

	return res.AuthResponse{User: res.NewUserResponse(user), Session: session}, nil
}

func (uc *UserUsecaseImpl) SignIn(ctx context.Context, request *req.SignInRequest) (res.AuthResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.AuthResponse{}, exception.FromValidator(err)
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return res.AuthResponse{}, errNoUser
		}
		return res.AuthResponse{}, exception.Internal(err)
	}

	if !util.ComparePassword(user.Password, request.Password) {
		uc.Log.Http.Warning.Warn().Uint("userId", user.ID).Msg("password mismatch")
		return res.AuthResponse{}, exception.Unauthorized("invalid password")
	}

	_, session, err := uc.Identity.SignIn(ctx, email, request.Password)
	if err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Uint("userId", user.ID).Msg("identity provider rejected sign in")
		return res.AuthResponse{}, exception.Unauthorized("invalid credentials").Wrap(err)
	}

	uc.Log.Http.Info.Info().Uint("userId", user.ID).Msg("user signed in")
	return res.AuthResponse{User: res.NewUserResponse(user), Session: session}, nil
}

func (uc *UserUsecaseImpl) RefreshToken(ctx context.Context, request *req.RefreshTokenRequest) (res.SessionResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.SessionResponse{}, exception.FromValidator(err)
	}

	session, err := uc.Identity.Refresh(ctx, strings.TrimSpace(request.RefreshToken))
	if err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Msg("refresh rejected")
		return res.SessionResponse{}, exception.Unauthorized("invalid refresh token").Wrap(err)
	}
	return res.SessionResponse{Session: session}, nil
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, id uint) (res.UserResponse, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, id); err != nil {
		if repository.IsNotFound(err) {
			return res.UserResponse{}, errNoUser
		}
		uc.Log.Http.Error.Error().Err(err).Uint("userId", id).Msg("failed to find user")
		return res.UserResponse{}, exception.Internal(err)
	}
	return res.NewUserResponse(&user), nil
}

func (uc *UserUsecaseImpl) UpdateUser(ctx context.Context, accessToken string, callerID, id uint, request *req.UpdateUserRequest) (res.UserResponse, error) {
	if callerID != id {
		return res.UserResponse{}, exception.Forbidden("you can only update your own profile")
	}
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, exception.FromValidator(err)
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, id); err != nil {
		if repository.IsNotFound(err) {
			return res.UserResponse{}, errNoUser
		}
		return res.UserResponse{}, exception.Internal(err)
	}

	fields := map[string]interface{}{}
	var email *string
	if request.Name != nil {
		fields["name"] = strings.TrimSpace(*request.Name)
	}
	if request.Avatar != nil {
		fields["avatar"] = strings.TrimSpace(*request.Avatar)
	}
	if request.Agreed != nil {
		fields["agreed"] = *request.Agreed
	}
	if request.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*request.Email))
		taken, err := uc.UserRepository.EmailTakenByOther(ctx, uc.DB, normalized, id)
		if err != nil {
			return res.UserResponse{}, exception.Internal(err)
		}
		if taken {
			return res.UserResponse{}, errEmailTaken
		}
		email = &normalized
		fields["email"] = normalized
	}
	if request.Password != nil {
		hashPassword, err := util.HashPassword(*request.Password)
		if err != nil {
			return res.UserResponse{}, exception.Internal(err)
		}
		fields["password"] = hashPassword
	}

	// sign-in goes through the provider, so its credentials must change first
	if email != nil || request.Password != nil {
		if err := uc.Identity.UpdateCredentials(ctx, accessToken, email, request.Password); err != nil {
			uc.Log.Http.Warning.Warn().Err(err).Uint("userId", id).Msg("identity provider rejected credential update")
			return res.UserResponse{}, exception.BadRequest("failed to update credentials").Wrap(err)
		}
	}

	if err := uc.UserRepository.Updates(ctx, uc.DB, &user, fields); err != nil {
		if repository.IsUniqueConstraintViolation(err) {
			return res.UserResponse{}, errEmailTaken.Wrap(err)
		}
		uc.Log.Http.Error.Error().Err(err).Uint("userId", id).Msg("failed to update user")
		return res.UserResponse{}, exception.Internal(err)
	}

	uc.Log.Http.Info.Info().Uint("userId", id).Int("fields", len(fields)).Msg("user updated")
	return uc.GetUserByID(ctx, id)
}

func (uc *UserUsecaseImpl) SignOut(ctx context.Context, accessToken string, claims *security.Claims) error {
	if err := uc.Identity.SignOut(ctx, accessToken); err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Msg("identity provider rejected sign out")
		return exception.BadRequest("failed to sign out").Wrap(err)
	}
	if claims == nil {
		return nil
	}

	// the access token stays valid until exp, so block its session locally
	if err := uc.Sessions.Revoke(ctx, claims.SessionID, claims.TTL(time.Now())); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("sessionId", claims.SessionID).Msg("failed to revoke session")
	}
	if err := uc.Sessions.EvictUserID(ctx, claims.Subject); err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Msg("failed to evict identity cache")
	}
	return nil
}

func (uc *UserUsecaseImpl) Authenticate(ctx context.Context, claims *security.Claims) (uint, error) {
	revoked, err := uc.Sessions.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("failed to check session")
		return 0, exception.Unauthorized("unable to verify session").Wrap(err)
	}
	if revoked {
		return 0, exception.Unauthorized("session has been signed out")
	}

	if cached, err := uc.Sessions.CachedUserID(ctx, claims.Subject); err == nil && cached != 0 {
		return cached, nil
	}

	user, err := uc.UserRepository.FindBySupabaseID(ctx, uc.DB, claims.Subject)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, exception.Unauthorized("user is not registered")
		}
		return 0, exception.Internal(err)
	}

	if err := uc.Sessions.CacheUserID(ctx, claims.Subject, user.ID); err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Msg("failed to cache identity")
	}
	return user.ID, nil
}
