package entity

import (
	"github.com/gofrs/uuid/v5"
)

// User is the shape the user directory exposes.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}
