package entity

type Category struct {
	BaseEntity
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`

	Populars   []Popular   `json:"populars,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
	Availables []Available `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
}
