package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account on the platform
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
