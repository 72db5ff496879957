package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRequest is the application record linking a user to a clan. It is the
// source of truth for the onboarding workflow: resolving a request also
// updates the applicant's status.
type JoinRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ClanID    uuid.UUID `gorm:"type:uuid;index;not null" json:"clan_id"`
	Status    Status    `gorm:"size:20;not null;default:pending" json:"status"`
	Message   *string   `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (j *JoinRequest) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
