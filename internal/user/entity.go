package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	IsAdmin       bool      `gorm:"not null;default:false" json:"is_admin"`
	FullName      string    `gorm:"not null" json:"fullname"`
	DateOfBirth   time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Qualification string    `gorm:"not null" json:"qualification"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
