package entity

type Notification struct {
	BaseEntity
	UserID   uint   `json:"userId" gorm:"not null;index:idx_notification_user_read"`
	SenderID uint   `json:"senderId" gorm:"not null"`
	Title    string `json:"title" gorm:"type:varchar(255);not null"`
	IsRead   bool   `json:"isRead" gorm:"not null;default:false;index:idx_notification_user_read"`
}
