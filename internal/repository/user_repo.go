package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// CreateWithApplication inserts the pending user and their join request
	// in one transaction so the application is visible to the owner queue.
	CreateWithApplication(ctx context.Context, user *model.User, request *model.JoinRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByDiscordID(ctx context.Context, discordID string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) CreateWithApplication(ctx context.Context, user *model.User, request *model.JoinRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		request.UserID = user.ID
		return tx.Create(request).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByDiscordID(ctx context.Context, discordID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
