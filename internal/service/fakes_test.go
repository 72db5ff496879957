package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
)

// fakeState is the shared in-memory store behind the fake repositories.
type fakeState struct {
	users         map[uuid.UUID]*model.User
	clans         map[uuid.UUID]*model.Clan
	requests      map[uuid.UUID]*model.JoinRequest
	announcements []*model.Announcement
}

func newFakeState() *fakeState {
	return &fakeState{
		users:    make(map[uuid.UUID]*model.User),
		clans:    make(map[uuid.UUID]*model.Clan),
		requests: make(map[uuid.UUID]*model.JoinRequest),
	}
}

func (s *fakeState) addUser(user *model.User) *model.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeState) addClan(clan *model.Clan) *model.Clan {
	if clan.ID == uuid.Nil {
		clan.ID = uuid.New()
	}
	s.clans[clan.ID] = clan
	return clan
}

func (s *fakeState) addRequest(request *model.JoinRequest) *model.JoinRequest {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	s.requests[request.ID] = request
	return request
}

type fakeUserRepo struct {
	s *fakeState
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.s.addUser(user)
	return nil
}

func (r *fakeUserRepo) CreateWithApplication(ctx context.Context, user *model.User, request *model.JoinRequest) error {
	r.s.addUser(user)
	request.UserID = user.ID
	r.s.addRequest(request)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByDiscordID(ctx context.Context, discordID string) (*model.User, error) {
	for _, user := range r.s.users {
		if user.DiscordID != nil && *user.DiscordID == discordID {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	for _, user := range r.s.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error {
	user, ok := r.s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	return nil
}

type fakeClanRepo struct {
	s *fakeState
}

func (r *fakeClanRepo) Create(ctx context.Context, clan *model.Clan) error {
	r.s.addClan(clan)
	return nil
}

func (r *fakeClanRepo) FindAll(ctx context.Context) ([]*model.Clan, error) {
	var clans []*model.Clan
	for _, clan := range r.s.clans {
		clans = append(clans, clan)
	}
	return clans, nil
}

func (r *fakeClanRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Clan, error) {
	clan, ok := r.s.clans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return clan, nil
}

func (r *fakeClanRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Clan, error) {
	for _, clan := range r.s.clans {
		if clan.OwnerID == ownerID {
			return clan, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClanRepo) AcceptedMembers(ctx context.Context, clanID uuid.UUID) ([]*model.User, error) {
	var members []*model.User
	for _, user := range r.s.users {
		if user.ClanID != nil && *user.ClanID == clanID && user.Status == model.StatusAccepted {
			members = append(members, user)
		}
	}
	return members, nil
}

func (r *fakeClanRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.clans[id]; !ok {
		return gorm.ErrRecordNotFound
	}

	for _, user := range r.s.users {
		if user.ClanID != nil && *user.ClanID == id {
			user.ClanID = nil
		}
	}
	for requestID, request := range r.s.requests {
		if request.ClanID == id {
			delete(r.s.requests, requestID)
		}
	}
	kept := r.s.announcements[:0]
	for _, a := range r.s.announcements {
		if a.ClanID == nil || *a.ClanID != id {
			kept = append(kept, a)
		}
	}
	r.s.announcements = kept

	delete(r.s.clans, id)
	return nil
}

type fakeRequestRepo struct {
	s *fakeState
}

func (r *fakeRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.JoinRequest, error) {
	request, ok := r.s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) ListByClan(ctx context.Context, clanID uuid.UUID) ([]dto.JoinRequestView, error) {
	var rows []dto.JoinRequestView
	for _, request := range r.s.requests {
		if request.ClanID != clanID {
			continue
		}
		view := dto.JoinRequestView{
			ID:      request.ID,
			Status:  request.Status,
			Message: request.Message,
		}
		if user, ok := r.s.users[request.UserID]; ok {
			view.Name = user.Name
			view.DiscordID = user.DiscordID
		}
		rows = append(rows, view)
	}
	return rows, nil
}

func (r *fakeRequestRepo) HasPendingForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	for _, request := range r.s.requests {
		if request.UserID == userID && request.Status == model.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRequestRepo) Resolve(ctx context.Context, request *model.JoinRequest, status model.Status, message *string) error {
	stored, ok := r.s.requests[request.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = status
	stored.Message = message

	if user, ok := r.s.users[request.UserID]; ok {
		user.Status = status
		if status == model.StatusAccepted {
			clanID := request.ClanID
			user.ClanID = &clanID
		}
	}
	return nil
}

type fakeAnnouncementRepo struct {
	s *fakeState
}

func (r *fakeAnnouncementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	if announcement.ID == uuid.Nil {
		announcement.ID = uuid.New()
	}
	r.s.announcements = append(r.s.announcements, announcement)
	return nil
}

func (r *fakeAnnouncementRepo) ListAll(ctx context.Context) ([]*model.Announcement, error) {
	// Newest first, matching the SQL ordering of the real repository.
	out := make([]*model.Announcement, len(r.s.announcements))
	for i, a := range r.s.announcements {
		out[len(out)-1-i] = a
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) ListByClan(ctx context.Context, clanID uuid.UUID) ([]*model.Announcement, error) {
	var out []*model.Announcement
	for i := len(r.s.announcements) - 1; i >= 0; i-- {
		a := r.s.announcements[i]
		if a.ClanID != nil && *a.ClanID == clanID {
			out = append(out, a)
		}
	}
	return out, nil
}
