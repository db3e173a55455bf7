package models

import "strings"

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Admin     bool       `json:"admin"`
	Password  string     `json:"password,omitempty"`
	CreatedAt *Timestamp `json:"createdAt,omitempty"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

func (u *User) DisplayName() string {
	return u.FirstName + " " + strings.ToUpper(u.LastName)
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	FirstName string `json:"firstName" form:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,min=3,max=20"`
	Password  string `json:"password" form:"password" validate:"required,min=3,max=40"`
}

// MessageResponse is the body of register and other acknowledgement endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
