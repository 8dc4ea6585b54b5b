package entity

// Message is an entry of the shared chat room.
type Message struct {
	BaseEntity
	UserID  uint   `json:"userId" gorm:"not null;index"`
	Message string `json:"message" gorm:"type:text;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// PrivateMessage belongs to the conversation of the unordered pair (SenderID, ReceiverID).
type PrivateMessage struct {
	BaseEntity
	SenderID   uint   `json:"senderId" gorm:"not null;index:idx_private_message_pair"`
	ReceiverID uint   `json:"receiverId" gorm:"not null;index:idx_private_message_pair"`
	Message    string `json:"message" gorm:"type:text;not null"`

	Sender   *User `json:"-" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE;"`
	Receiver *User `json:"-" gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE;"`
}
