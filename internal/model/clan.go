package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Clan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	BannerURL   *string   `gorm:"type:text" json:"banner_url,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Clan) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
