package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
	"anoa.com/clanportal/pkg/apperror"
)

type AdminService interface {
	GetData(ctx context.Context) (*dto.AdminData, error)
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
	DeleteClan(ctx context.Context, clanID uuid.UUID) error
}

type adminService struct {
	users repository.UserRepository
	clans repository.ClanRepository
}

func NewAdminService(users repository.UserRepository, clans repository.ClanRepository) AdminService {
	return &adminService{
		users: users,
		clans: clans,
	}
}

func (s *adminService) GetData(ctx context.Context) (*dto.AdminData, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	clans, err := s.clans.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []*model.User{}
	}
	if clans == nil {
		clans = []*model.Clan{}
	}

	return &dto.AdminData{Users: users, Clans: clans}, nil
}

func (s *adminService) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	parsed := model.Role(role)
	if !parsed.Valid() {
		return apperror.New(http.StatusBadRequest, fmt.Sprintf("invalid role %q", role), nil)
	}

	if err := s.users.UpdateRole(ctx, userID, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "user not found", err)
		}
		return err
	}

	return nil
}

func (s *adminService) DeleteClan(ctx context.Context, clanID uuid.UUID) error {
	if err := s.clans.DeleteCascade(ctx, clanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "clan not found", err)
		}
		return err
	}

	return nil
}
