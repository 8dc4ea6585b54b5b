package req

type CreateReviewRequest struct {
	Rating      int    `json:"rating" validate:"rating"`
	Comment     string `json:"comment" validate:"max=2000"`
	UserID      uint   `json:"userId" validate:"required"`
	PopularID   *uint  `json:"popularId" validate:"omitempty,gt=0"`
	AvailableID *uint  `json:"availableId" validate:"omitempty,gt=0"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,rating"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

type AddFavoriteRequest struct {
	PopularID uint `json:"popularId" validate:"required"`
}
