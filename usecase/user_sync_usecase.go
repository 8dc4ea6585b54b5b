package usecase

import "context"

type SyncResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// UserSyncUsecase imports identity-provider users that have no local row yet.
type UserSyncUsecase interface {
	SyncUsers(ctx context.Context) (SyncResult, error)
}
