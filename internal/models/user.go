package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// User is a registered account. Every user is also a channel that others can
// subscribe to.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"fullname"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Avatar   string `json:"avatar,omitempty"`
}

type RegisterUserRequest struct {
	FullName string `json:"fullname" validate:"required,min=2,max=80"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	FullName string `json:"fullname,omitempty" validate:"omitempty,min=2,max=80"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
