package req

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,notblank,max=255"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,notblank"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,notblank,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Avatar   *string `json:"avatar"`
	Agreed   *bool   `json:"agreed"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}
