package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the club/academy tenant boundary. It owns groups and
// role memberships and is immutable once created aside from renames.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
