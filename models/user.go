package models

import (
	"time"
)

type User struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Login            string    `json:"login" gorm:"not null"` // mutable, uniqueness enforced in services
	PasswordHash     string    `json:"-" gorm:"not null"`
	IsModerator      bool      `json:"is_moderator" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at"`
	ProfilePhotoPath string    `json:"profile_photo_path"`
	Bio              string    `json:"bio"`

	FavouriteTags []TourTag `json:"favourite_tags,omitempty" gorm:"many2many:users_to_tags_association;"`
}

func (User) TableName() string {
	return "users"
}
