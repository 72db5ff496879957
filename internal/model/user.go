package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access-level tag on a user. Checks are exact-match: an admin
// does not pass a clan_owner gate.
type Role string

const (
	RoleMember    Role = "member"
	RoleClanOwner Role = "clan_owner"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleClanOwner, RoleAdmin:
		return true
	}
	return false
}

// Status is the application lifecycle marker, used both for a user's clan
// onboarding and for individual join requests.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:50;not null" json:"name"`
	Phone        *string    `gorm:"size:30" json:"phone,omitempty"`
	DiscordID    *string    `gorm:"size:50;uniqueIndex" json:"discord_id,omitempty"`
	Age          *int       `json:"age,omitempty"`
	Bio          *string    `gorm:"type:text" json:"bio,omitempty"`
	Reason       *string    `gorm:"type:text" json:"reason,omitempty"`
	ClanID       *uuid.UUID `gorm:"type:uuid;index" json:"clan_id,omitempty"`
	AvatarURL    *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Role         Role       `gorm:"size:20;not null;default:member" json:"role"`
	PasswordHash *string    `gorm:"size:255" json:"-"`
	Status       Status     `gorm:"size:20;not null;default:pending" json:"status"`
	Score        int        `gorm:"not null;default:0" json:"score"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
