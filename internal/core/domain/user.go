package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Registration rejects anything else.
type Role string

const (
	RoleDesigner Role = "designer"
	RoleClient   Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDesigner || r == RoleClient
}

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
