package entity

// Popular is a featured tour shown on the landing page. Titles are unique.
type Popular struct {
	BaseEntity
	Title       string  `json:"title" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null;default:0"`
	CategoryID  *uint   `json:"categoryId" gorm:"index"`

	Category  *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:PopularID;constraint:OnDelete:CASCADE;"`
	Favorites []Favorite `json:"-" gorm:"foreignKey:PopularID;constraint:OnDelete:CASCADE;"`
}

// Available is a bookable tour.
type Available struct {
	BaseEntity
	Title       string  `json:"title" gorm:"type:varchar(255);not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null;default:0"`
	CategoryID  *uint   `json:"categoryId" gorm:"index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:AvailableID;constraint:OnDelete:CASCADE;"`
}
