package usecase

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"tour-booking-api/config/logger"
	"tour-booking-api/entity"
	"tour-booking-api/repository"
	"tour-booking-api/security"
)

type UserSyncUsecaseImpl struct {
	*repository.UserRepository
	*gorm.DB
	Log      *logger.AppLogger
	Identity security.IdentityProvider
}

func NewUserSyncUsecase(userRepository *repository.UserRepository, DB *gorm.DB, logger *logger.AppLogger, identity security.IdentityProvider) UserSyncUsecase {
	return &UserSyncUsecaseImpl{UserRepository: userRepository, DB: DB, Log: logger, Identity: identity}
}

func (uc *UserSyncUsecaseImpl) SyncUsers(ctx context.Context) (SyncResult, error) {
	var result SyncResult

	identities, err := uc.Identity.ListUsers(ctx)
	if err != nil {
		uc.Log.Sync.Error.Error().Err(err).Msg("failed to list identity users")
		return result, err
	}

	existing, err := uc.UserRepository.ExistingSupabaseIDs(ctx, uc.DB)
	if err != nil {
		return result, err
	}

	for _, identity := range identities {
		if _, ok := existing[identity.ID]; ok || identity.Email == "" {
			result.Skipped++
			continue
		}

		user := &entity.User{
			SupabaseID: identity.ID,
			Email:      identity.Email,
			Name:       displayName(identity),
			Avatar:     identity.Avatar,
			Agreed:     false,
		}
		if err := uc.UserRepository.Save(ctx, uc.DB, user); err != nil {
			if repository.IsUniqueConstraintViolation(err) {
				uc.Log.Sync.Warning.Warn().
					Str("supabaseId", identity.ID).
					Str("email", identity.Email).
					Msg("email already used by another local user")
				result.Skipped++
				continue
			}
			return result, err
		}

		uc.Log.Sync.Trace.Trace().Str("supabaseId", identity.ID).Uint("userId", user.ID).Msg("user created")
		result.Created++
	}

	uc.Log.Sync.Info.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Msg("identity sync finished")
	return result, nil
}

func displayName(identity security.IdentityUser) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	return strings.SplitN(identity.Email, "@", 2)[0]
}
