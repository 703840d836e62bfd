package dto

import (
	"strings"
	"time"

	userDTO "classroom_backend/internals/features/classroom/users/dto"
	helper "classroom_backend/internals/helpers"
)

var validate = helper.NewValidator()

// SignUpRequest is the public self-registration body. It carries no role:
// new accounts are always students and only PATCH /users/:id changes roles.
type SignUpRequest struct {
	Name     string  `json:"name"     validate:"required,max=255"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Image    *string `json:"image"`
}

func (r *SignUpRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Image = helper.TrimPtr(r.Image)
}

func (r SignUpRequest) Validate() error { return validate.Struct(r) }

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SignInRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r SignInRequest) Validate() error { return validate.Struct(r) }

type AuthResponse struct {
	Token string               `json:"token"`
	User  userDTO.UserResponse `json:"user"`
}

type SessionInfo struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionResponse struct {
	Session SessionInfo          `json:"session"`
	User    userDTO.UserResponse `json:"user"`
}
