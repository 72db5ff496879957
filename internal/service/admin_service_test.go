package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/clanportal/internal/model"
	"anoa.com/clanportal/pkg/apperror"
)

func newAdminFixture() (*fakeState, AdminService) {
	state := newFakeState()
	svc := NewAdminService(&fakeUserRepo{s: state}, &fakeClanRepo{s: state})
	return state, svc
}

func TestSetRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "member", role: "member", wantCode: 0},
		{name: "clan owner", role: "clan_owner", wantCode: 0},
		{name: "admin", role: "admin", wantCode: 0},
		{name: "arbitrary string", role: "superuser", wantCode: http.StatusBadRequest},
		{name: "empty", role: "", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, svc := newAdminFixture()
			user := state.addUser(&model.User{Name: "target"})

			err := svc.SetRole(context.Background(), user.ID, tt.role)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, model.Role(tt.role), user.Role)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperror.MapErrorToStatus(err))
		})
	}
}

func TestSetRoleUnknownUser(t *testing.T) {
	_, svc := newAdminFixture()

	err := svc.SetRole(context.Background(), uuid.New(), "member")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))
}

func TestDeleteClanCascades(t *testing.T) {
	state, svc := newAdminFixture()
	owner := state.addUser(&model.User{Name: "owner", Role: model.RoleClanOwner})
	clan := state.addClan(&model.Clan{Name: "Legends", OwnerID: owner.ID})

	member := state.addUser(&model.User{Name: "member", Status: model.StatusAccepted, ClanID: &clan.ID})
	state.addRequest(&model.JoinRequest{UserID: member.ID, ClanID: clan.ID, Status: model.StatusPending})
	state.announcements = append(state.announcements, &model.Announcement{ID: uuid.New(), ClanID: &clan.ID, Content: "hi"})

	require.NoError(t, svc.DeleteClan(context.Background(), clan.ID))

	assert.NotContains(t, state.clans, clan.ID)
	assert.Nil(t, member.ClanID, "member clan_id should be cleared")
	assert.Empty(t, state.requests)
	assert.Empty(t, state.announcements)
}

func TestDeleteClanUnknown(t *testing.T) {
	_, svc := newAdminFixture()

	err := svc.DeleteClan(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.MapErrorToStatus(err))
}

func TestGetDataNeverNil(t *testing.T) {
	_, svc := newAdminFixture()

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data.Users)
	assert.NotNil(t, data.Clans)
}
