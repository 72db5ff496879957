package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/model"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	// ListAll is the global feed across all clans, newest first.
	ListAll(ctx context.Context) ([]*model.Announcement, error)
	ListByClan(ctx context.Context, clanID uuid.UUID) ([]*model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) ListAll(ctx context.Context) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) ListByClan(ctx context.Context, clanID uuid.UUID) ([]*model.Announcement, error) {
	var announcements []*model.Announcement
	if err := r.db.WithContext(ctx).
		Where("clan_id = ?", clanID).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}

	return announcements, nil
}
