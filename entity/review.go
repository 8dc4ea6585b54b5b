package entity

type Review struct {
	BaseEntity
	Rating      int    `json:"rating" gorm:"not null"`
	Comment     string `json:"comment" gorm:"type:text"`
	UserID      uint   `json:"userId" gorm:"not null;uniqueIndex:idx_review_user_popular;uniqueIndex:idx_review_user_available"`
	PopularID   *uint  `json:"popularId" gorm:"uniqueIndex:idx_review_user_popular"`
	AvailableID *uint  `json:"availableId" gorm:"uniqueIndex:idx_review_user_available"`

	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Popular   *Popular   `json:"popular,omitempty" gorm:"foreignKey:PopularID"`
	Available *Available `json:"available,omitempty" gorm:"foreignKey:AvailableID"`
}
