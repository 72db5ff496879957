package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/internal/repository"
	"anoa.com/clanportal/pkg/apperror"
)

type ClanService interface {
	ListClans(ctx context.Context) ([]*model.Clan, error)
	ClanDetail(ctx context.Context, id uuid.UUID) (*dto.ClanDetail, error)
}

type clanService struct {
	clans         repository.ClanRepository
	announcements repository.AnnouncementRepository
}

func NewClanService(clans repository.ClanRepository, announcements repository.AnnouncementRepository) ClanService {
	return &clanService{
		clans:         clans,
		announcements: announcements,
	}
}

func (s *clanService) ListClans(ctx context.Context) ([]*model.Clan, error) {
	clans, err := s.clans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if clans == nil {
		clans = []*model.Clan{}
	}

	return clans, nil
}

func (s *clanService) ClanDetail(ctx context.Context, id uuid.UUID) (*dto.ClanDetail, error) {
	clan, err := s.clans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "clan not found", err)
		}
		return nil, err
	}

	members, err := s.clans.AcceptedMembers(ctx, clan.ID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []*model.User{}
	}

	announcements, err := s.announcements.ListByClan(ctx, clan.ID)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []*model.Announcement{}
	}

	return &dto.ClanDetail{
		Clan:          clan,
		Members:       members,
		Announcements: announcements,
	}, nil
}
