package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	FullName      string `json:"fullname" validate:"required"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Qualification string `json:"qualification" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"is_admin"`
	FullName      string    `json:"fullname"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Qualification string    `json:"qualification"`
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		IsAdmin:       u.IsAdmin,
		FullName:      u.FullName,
		DateOfBirth:   u.DateOfBirth,
		Qualification: u.Qualification,
	}
}
