package groups

import "github.com/google/uuid"

// CreateGroupRequest represents the data needed to create a new group
type CreateGroupRequest struct {
	OrganizationID uuid.UUID  `json:"organization_id" validate:"required"`
	Name           string     `json:"name" validate:"required"`
	HeadCoachID    *uuid.UUID `json:"head_coach_id,omitempty"`
}
