package entity

type Favorite struct {
	BaseEntity
	UserID    uint `json:"userId" gorm:"not null;uniqueIndex:idx_favorite_user_popular"`
	PopularID uint `json:"popularId" gorm:"not null;uniqueIndex:idx_favorite_user_popular"`

	Popular *Popular `json:"popular,omitempty" gorm:"foreignKey:PopularID"`
}
