package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
)

type JoinRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.JoinRequest, error)
	// ListByClan returns the clan's requests joined with applicant profiles.
	ListByClan(ctx context.Context, clanID uuid.UUID) ([]dto.JoinRequestView, error)
	HasPendingForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	// Resolve flips the request to a terminal status and, in the same
	// transaction, updates the applicant's own status (and clan membership
	// on acceptance).
	Resolve(ctx context.Context, request *model.JoinRequest, status model.Status, message *string) error
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JoinRequest, error) {
	var request model.JoinRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

func (r *joinRequestRepository) ListByClan(ctx context.Context, clanID uuid.UUID) ([]dto.JoinRequestView, error) {
	var rows []dto.JoinRequestView
	if err := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Select("join_requests.id, users.name, users.discord_id, join_requests.status, join_requests.message").
		Joins("JOIN users ON users.id = join_requests.user_id").
		Where("join_requests.clan_id = ?", clanID).
		Order("join_requests.created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *joinRequestRepository) HasPendingForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.JoinRequest{}).
		Where("user_id = ? AND status = ?", userID, model.StatusPending).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *joinRequestRepository) Resolve(ctx context.Context, request *model.JoinRequest, status model.Status, message *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.JoinRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":  status,
				"message": message,
			}).Error; err != nil {
			return err
		}

		userUpdates := map[string]interface{}{"status": status}
		if status == model.StatusAccepted {
			userUpdates["clan_id"] = request.ClanID
		}

		return tx.Model(&model.User{}).
			Where("id = ?", request.UserID).
			Updates(userUpdates).Error
	})
}
