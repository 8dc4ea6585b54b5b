package res

import (
	"time"

	"tour-booking-api/entity"
	"tour-booking-api/security"
)

type UserResponse struct {
	ID         uint      `json:"id"`
	SupabaseID string    `json:"supabaseId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar"`
	Agreed     bool      `json:"agreed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		SupabaseID: user.SupabaseID,
		Email:      user.Email,
		Name:       user.Name,
		Avatar:     user.Avatar,
		Agreed:     user.Agreed,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

type AuthResponse struct {
	User    UserResponse      `json:"user"`
	Session *security.Session `json:"session"`
}

type SessionResponse struct {
	Session *security.Session `json:"session"`
}
