package dto

import (
	"github.com/google/uuid"

	"anoa.com/clanportal/internal/model"
)

// JoinRequestView is one row of the clan owner's approval queue, joined
// with the applicant's profile.
type JoinRequestView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	DiscordID *string      `json:"discord_id,omitempty"`
	Status    model.Status `json:"status"`
	Message   *string      `json:"message,omitempty"`
}

type RejectInput struct {
	Message string `json:"message" binding:"required,max=500"`
}
