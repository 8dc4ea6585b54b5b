package usecase

import (
	"context"

	"tour-booking-api/dto/req"
	"tour-booking-api/dto/res"
	"tour-booking-api/security"
)

type UserUsecase interface {
	SignUp(ctx context.Context, request *req.SignUpRequest) (res.AuthResponse, error)
	SignIn(ctx context.Context, request *req.SignInRequest) (res.AuthResponse, error)
	RefreshToken(ctx context.Context, request *req.RefreshTokenRequest) (res.SessionResponse, error)
	GetUserByID(ctx context.Context, id uint) (res.UserResponse, error)
	UpdateUser(ctx context.Context, accessToken string, callerID, id uint, request *req.UpdateUserRequest) (res.UserResponse, error)
	SignOut(ctx context.Context, accessToken string, claims *security.Claims) error
	// Authenticate maps verified token claims to the local user id.
	Authenticate(ctx context.Context, claims *security.Claims) (uint, error)
}
