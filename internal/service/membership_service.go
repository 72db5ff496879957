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

// MembershipService is the clan application workflow: self-registration,
// the owner's approval queue, and the pending→accepted/rejected transitions.
type MembershipService interface {
	Register(ctx context.Context, input dto.RegisterInput) (uuid.UUID, error)
	ListRequests(ctx context.Context, ownerID uuid.UUID) ([]dto.JoinRequestView, error)
	Approve(ctx context.Context, ownerID, requestID uuid.UUID) error
	Reject(ctx context.Context, ownerID, requestID uuid.UUID, message string) error
}

type membershipService struct {
	users    repository.UserRepository
	clans    repository.ClanRepository
	requests repository.JoinRequestRepository
}

func NewMembershipService(users repository.UserRepository, clans repository.ClanRepository, requests repository.JoinRequestRepository) MembershipService {
	return &membershipService{
		users:    users,
		clans:    clans,
		requests: requests,
	}
}

func (s *membershipService) Register(ctx context.Context, input dto.RegisterInput) (uuid.UUID, error) {
	clanID, err := uuid.Parse(input.ClanID)
	if err != nil {
		return uuid.Nil, apperror.New(http.StatusBadRequest, "invalid clan id", err)
	}

	clan, err := s.clans.FindByID(ctx, clanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperror.New(http.StatusNotFound, "clan not found", err)
		}
		return uuid.Nil, err
	}

	if input.DiscordID != "" {
		existing, err := s.users.FindByDiscordID(ctx, input.DiscordID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
		if existing != nil {
			pending, err := s.requests.HasPendingForUser(ctx, existing.ID)
			if err != nil {
				return uuid.Nil, err
			}
			if pending {
				return uuid.Nil, apperror.New(http.StatusConflict, "application already pending", nil)
			}
			// discord_id is unique; a second profile for the same account
			// is a conflict even after the first application resolved.
			return uuid.Nil, apperror.New(http.StatusConflict, "discord account already registered", nil)
		}
	}

	user := &model.User{
		Name:      input.Name,
		Phone:     optional(input.Phone),
		DiscordID: optional(input.DiscordID),
		Age:       &input.Age,
		Bio:       optional(input.Bio),
		Reason:    optional(input.Reason),
		ClanID:    &clan.ID,
		AvatarURL: optional(input.Avatar),
		Role:      model.RoleMember,
		Status:    model.StatusPending,
	}

	request := &model.JoinRequest{
		ClanID: clan.ID,
		Status: model.StatusPending,
	}

	if err := s.users.CreateWithApplication(ctx, user, request); err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}

func (s *membershipService) ListRequests(ctx context.Context, ownerID uuid.UUID) ([]dto.JoinRequestView, error) {
	clan, err := s.clans.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// An owner without a clan sees an empty queue, not an error.
			return []dto.JoinRequestView{}, nil
		}
		return nil, err
	}

	rows, err := s.requests.ListByClan(ctx, clan.ID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.JoinRequestView{}
	}

	return rows, nil
}

func (s *membershipService) Approve(ctx context.Context, ownerID, requestID uuid.UUID) error {
	return s.resolve(ctx, ownerID, requestID, model.StatusAccepted, nil)
}

func (s *membershipService) Reject(ctx context.Context, ownerID, requestID uuid.UUID, message string) error {
	return s.resolve(ctx, ownerID, requestID, model.StatusRejected, &message)
}

func (s *membershipService) resolve(ctx context.Context, ownerID, requestID uuid.UUID, status model.Status, message *string) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusNotFound, "join request not found", err)
		}
		return err
	}

	// The mutation is scoped like the listing: only the owner of the
	// request's clan may resolve it.
	clan, err := s.clans.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(http.StatusForbidden, "forbidden", err)
		}
		return err
	}
	if request.ClanID != clan.ID {
		return apperror.New(http.StatusForbidden, "forbidden", nil)
	}

	if request.Status != model.StatusPending {
		return apperror.New(http.StatusConflict, "join request already resolved", nil)
	}

	return s.requests.Resolve(ctx, request, status, message)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
