package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/model"
)

type ClanRepository interface {
	Create(ctx context.Context, clan *model.Clan) error
	FindAll(ctx context.Context) ([]*model.Clan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Clan, error)
	// FindByOwner resolves the single clan owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Clan, error)
	AcceptedMembers(ctx context.Context, clanID uuid.UUID) ([]*model.User, error)
	// DeleteCascade removes the clan together with its dependents: members'
	// clan_id is cleared, join requests and announcements are deleted.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type clanRepository struct {
	db *gorm.DB
}

func NewClanRepository(db *gorm.DB) ClanRepository {
	return &clanRepository{db: db}
}

func (r *clanRepository) Create(ctx context.Context, clan *model.Clan) error {
	return r.db.WithContext(ctx).Create(clan).Error
}

func (r *clanRepository) FindAll(ctx context.Context) ([]*model.Clan, error) {
	var clans []*model.Clan
	if err := r.db.WithContext(ctx).Find(&clans).Error; err != nil {
		return nil, err
	}

	return clans, nil
}

func (r *clanRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Clan, error) {
	var clan model.Clan
	if err := r.db.WithContext(ctx).First(&clan, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &clan, nil
}

func (r *clanRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Clan, error) {
	var clan model.Clan
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&clan).Error; err != nil {
		return nil, err
	}

	return &clan, nil
}

func (r *clanRepository) AcceptedMembers(ctx context.Context, clanID uuid.UUID) ([]*model.User, error) {
	var members []*model.User
	if err := r.db.WithContext(ctx).
		Where("clan_id = ? AND status = ?", clanID, model.StatusAccepted).
		Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}

func (r *clanRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).
			Where("clan_id = ?", id).
			Update("clan_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.JoinRequest{}, "clan_id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&model.Announcement{}, "clan_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Clan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
