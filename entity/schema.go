package entity

import "gorm.io/gorm/schema"

// NamingStrategy gives every table a t_ prefix and a singular name (t_user, t_review, ...).
var NamingStrategy = schema.NamingStrategy{
	TablePrefix:   "t_",
	SingularTable: true,
}

// All lists the models in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Popular{},
		&Available{},
		&Review{},
		&Favorite{},
		&Message{},
		&PrivateMessage{},
		&Notification{},
	}
}
