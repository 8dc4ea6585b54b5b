package entity

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	BaseEntity
	SupabaseID string `json:"supabaseId" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email      string `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name       string `json:"name" gorm:"type:varchar(255)"`
	Avatar     string `json:"avatar" gorm:"type:text"`
	Agreed     bool   `json:"agreed" gorm:"default:false"`
	Password   string `json:"-" gorm:"type:varchar(255)"`

	Favorites []Favorite `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Reviews   []Review   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (user *User) BeforeSave(tx *gorm.DB) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return nil
}
