package req

type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type CreatePopularRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=255"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CategoryID  *uint    `json:"categoryId" validate:"omitempty,gt=0"`
}

type UpdatePopularRequest struct {
	Title       *string    `json:"title" validate:"omitempty,notblank,max=255"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	CategoryID  OptionalID `json:"categoryId" validate:"omitempty,gt=0"`
}

type CreateAvailableRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=255"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CategoryID  *uint    `json:"categoryId" validate:"omitempty,gt=0"`
}

// UpdateAvailableRequest carries the id in the body for PUT /available/put.
type UpdateAvailableRequest struct {
	ID          *uint      `json:"id"`
	Title       *string    `json:"title" validate:"omitempty,notblank,max=255"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	CategoryID  OptionalID `json:"categoryId" validate:"omitempty,gt=0"`
}
