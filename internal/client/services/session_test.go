package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/common"
	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

func TestSession_InitialStateIsAnonymous(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.session.Restore(context.Background()))

	assert.Equal(t, State{Status: Anonymous}, e.session.State())
	assert.False(t, e.session.IsAuthenticated())
	assert.Equal(t, Profile{DisplayName: "Volunteer", Role: models.RoleVolunteer}, e.session.Profile())
}

func TestSession_LoginSignOutAndRestart(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.accounts.Create(ctx, true, "organizer@example.com", "pw", "Greenies")
	require.NoError(t, err)

	require.NoError(t, e.session.Login(ctx, a))
	assert.Equal(t, State{Status: Authenticated, AccountID: a.ID}, e.session.State())
	assert.Equal(t, models.RoleOrganizer, e.session.Profile().Role)
	assert.Equal(t, "Greenies", e.session.Profile().EcoTeam)

	// restart while signed in
	restarted := newEnvAt(t, e.dsn)
	require.NoError(t, restarted.session.Restore(ctx))
	assert.Equal(t, State{Status: Authenticated, AccountID: a.ID}, restarted.session.State())
	assert.Equal(t, "organizer", restarted.session.Profile().DisplayName)

	require.NoError(t, restarted.session.SignOut(ctx))
	assert.Equal(t, State{Status: Anonymous}, restarted.session.State())
	assert.Equal(t, models.RoleVolunteer, restarted.session.Profile().Role)

	// restart after sign-out
	again := newEnvAt(t, e.dsn)
	require.NoError(t, again.session.Restore(ctx))
	assert.Equal(t, State{Status: Anonymous}, again.session.State())

	stored, err := again.accounts.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, stored.Role, "sign-out must not touch the account")
}

func TestSession_RestoreClearsOrphanedMarker(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.store.WriteActiveSession(ctx, "deleted-user"))

	require.NoError(t, e.session.Restore(ctx))
	assert.Equal(t, State{Status: Anonymous}, e.session.State())

	id, err := e.store.ReadActiveSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, id, "stale marker must be cleared")
}

func TestSession_LoginRejectsEmptyAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.ErrorIs(t, e.session.Login(ctx, nil), common.ErrUnauthenticated)
	require.ErrorIs(t, e.session.Login(ctx, &models.Account{}), common.ErrUnauthenticated)
	assert.False(t, e.session.IsAuthenticated())
}

func TestSession_Refresh(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.accounts.Create(ctx, false, "v@example.com", "pw", "")
	require.NoError(t, err)
	other, err := e.accounts.Create(ctx, false, "w@example.com", "pw", "")
	require.NoError(t, err)

	require.ErrorIs(t, e.session.Refresh(a), common.ErrUnauthenticated, "anonymous")

	require.NoError(t, e.session.Login(ctx, a))

	updated := *a
	updated.TreesLogged = 3
	updated.PointsEarned = 15
	require.NoError(t, e.session.Refresh(&updated))
	assert.Equal(t, 3, e.session.Profile().TreesLogged)
	assert.Equal(t, 15, e.session.Profile().PointsEarned)
	assert.Equal(t, a.ID, e.session.ActiveAccountID())

	require.ErrorIs(t, e.session.Refresh(other), common.ErrUnauthenticated)
	assert.Equal(t, a.ID, e.session.ActiveAccountID(), "identity never changes on refresh")
}

// failingSessionStore fails every write.
type failingSessionStore struct {
	id  string
	err error
}

func (f *failingSessionStore) ReadActiveSession(context.Context) (string, error) { return f.id, nil }
func (f *failingSessionStore) WriteActiveSession(context.Context, string) error  { return f.err }
func (f *failingSessionStore) ClearActiveSession(context.Context) error          { return f.err }

func TestSession_StoreFailureLeavesStateUnchanged(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a, err := e.accounts.Create(ctx, false, "v@example.com", "pw", "")
	require.NoError(t, err)

	boom := errors.New("disk full")
	s := NewSessionController(&failingSessionStore{err: boom}, e.accounts, logging.Nop())

	require.ErrorIs(t, s.Login(ctx, a), boom)
	assert.False(t, s.IsAuthenticated(), "memory must not run ahead of the store")

	s.accountID = a.ID
	require.ErrorIs(t, s.SignOut(ctx), boom)
	assert.True(t, s.IsAuthenticated())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
