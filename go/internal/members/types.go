package members

import "github.com/google/uuid"

// CreateUserRequest represents the data needed to create a new user
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// CreateGuardianLinkRequest ties a guardian account to a player account
type CreateGuardianLinkRequest struct {
	PlayerID   uuid.UUID `json:"player_id" validate:"required"`
	GuardianID uuid.UUID `json:"guardian_id" validate:"required"`
	CanView    bool      `json:"can_view"`
	CanEdit    bool      `json:"can_edit"`
	IsPrimary  bool      `json:"is_primary"`
}
