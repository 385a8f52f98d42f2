// Package schemas defines the request and response payloads of the
// API. Inbound structs carry gin binding tags; violations are reported
// to the client as 422.
package schemas

import (
	"github.com/FrankCasanova/fastapi-blog/models"
)

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

type ShowUser struct {
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func NewShowUser(user *models.User) ShowUser {
	return ShowUser{
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}
