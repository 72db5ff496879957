package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/clanportal/internal/dto"
	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/pkg/apperror"
)

func newMembershipFixture() (*fakeState, MembershipService) {
	state := newFakeState()
	svc := NewMembershipService(
		&fakeUserRepo{s: state},
		&fakeClanRepo{s: state},
		&fakeRequestRepo{s: state},
	)
	return state, svc
}

func registerInput(clanID uuid.UUID) dto.RegisterInput {
	return dto.RegisterInput{
		Name:   "trevor",
		Phone:  "555-0100",
		Age:    25,
		Reason: "looking for a crew",
		ClanID: clanID.String(),
	}
}

func TestRegisterCreatesUserAndJoinRequest(t *testing.T) {
	state, svc := newMembershipFixture()
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: uuid.New()})

	id, err := svc.Register(context.Background(), registerInput(clan.ID))
	require.NoError(t, err)

	user, ok := state.users[id]
	require.True(t, ok, "registered user should be stored")
	assert.Equal(t, model.StatusPending, user.Status)
	assert.Equal(t, model.RoleMember, user.Role)
	require.NotNil(t, user.ClanID)
	assert.Equal(t, clan.ID, *user.ClanID)

	require.Len(t, state.requests, 1)
	for _, request := range state.requests {
		assert.Equal(t, user.ID, request.UserID)
		assert.Equal(t, clan.ID, request.ClanID)
		assert.Equal(t, model.StatusPending, request.Status)
	}
}

func TestRegisterUnknownClan(t *testing.T) {
	_, svc := newMembershipFixture()

	_, err := svc.Register(context.Background(), registerInput(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))
}

func TestRegisterDuplicatePendingApplication(t *testing.T) {
	state, svc := newMembershipFixture()
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: uuid.New()})

	input := registerInput(clan.ID)
	input.DiscordID = "123456789"

	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.MapErrorToStatus(err))
}

func TestRegisterResolvedDiscordAccountIsConflict(t *testing.T) {
	state, svc := newMembershipFixture()
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: uuid.New()})
	discordID := "987654321"
	state.addUser(&model.User{
		Name:      "veteran",
		DiscordID: &discordID,
		Status:    model.StatusAccepted,
	})

	input := registerInput(clan.ID)
	input.DiscordID = discordID

	_, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.MapErrorToStatus(err))
}

func TestListRequestsWithoutOwnedClan(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "ownerless", Role: model.RoleClanOwner})

	rows, err := svc.ListRequests(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestApproveSyncsRequestAndUser(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})
	applicant := state.addUser(&model.User{Name: "applicant", Status: model.StatusPending})
	request := state.addRequest(&model.JoinRequest{
		UserID: applicant.ID,
		ClanID: clan.ID,
		Status: model.StatusPending,
	})

	require.NoError(t, svc.Approve(context.Background(), owner.ID, request.ID))

	assert.Equal(t, model.StatusAccepted, state.requests[request.ID].Status)
	assert.Equal(t, model.StatusAccepted, applicant.Status)
	require.NotNil(t, applicant.ClanID)
	assert.Equal(t, clan.ID, *applicant.ClanID)
}

func TestRejectStoresMessage(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})
	applicant := state.addUser(&model.User{Name: "applicant", Status: model.StatusPending})
	request := state.addRequest(&model.JoinRequest{
		UserID: applicant.ID,
		ClanID: clan.ID,
		Status: model.StatusPending,
	})

	require.NoError(t, svc.Reject(context.Background(), owner.ID, request.ID, "no room"))

	stored := state.requests[request.ID]
	assert.Equal(t, model.StatusRejected, stored.Status)
	require.NotNil(t, stored.Message)
	assert.Equal(t, "no room", *stored.Message)
	assert.Equal(t, model.StatusRejected, applicant.Status)
}

func TestResolveScopedToOwnedClan(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	otherOwner := state.addUser(&model.User{Name: "other", Role: model.RoleClanOwner})
	state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})
	foreignClan := state.addClan(&model.Clan{Name: "Rivals", OwnerID: otherOwner.ID})
	applicant := state.addUser(&model.User{Name: "applicant", Status: model.StatusPending})
	request := state.addRequest(&model.JoinRequest{
		UserID: applicant.ID,
		ClanID: foreignClan.ID,
		Status: model.StatusPending,
	})

	err := svc.Approve(context.Background(), owner.ID, request.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.MapErrorToStatus(err))

	// Nothing mutated.
	assert.Equal(t, model.StatusPending, state.requests[request.ID].Status)
	assert.Equal(t, model.StatusPending, applicant.Status)
}

func TestResolveTerminalStateIsConflict(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})
	applicant := state.addUser(&model.User{Name: "applicant"})
	request := state.addRequest(&model.JoinRequest{
		UserID: applicant.ID,
		ClanID: clan.ID,
		Status: model.StatusAccepted,
	})

	err := svc.Approve(context.Background(), owner.ID, request.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.MapErrorToStatus(err))
}

func TestResolveUnknownRequest(t *testing.T) {
	state, svc := newMembershipFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})

	err := svc.Approve(context.Background(), owner.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))
}
