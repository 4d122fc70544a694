package store

import (
	"context"
	"testing"
	"time"

	"farm2market_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserStore() (*UserStore, *fakeClient) {
	client := newFakeClient()
	s := NewUserStore(NewKV(client), 0)
	return s, client
}

func strPtr(s string) *string { return &s }

func TestSignUpCreatesSessionWithoutPassword(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	session, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Asha", session.Name)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, models.RoleBuyer, session.Role)
	assert.NotEmpty(t, session.JoinDate)

	// l'annuaire garde le mot de passe, la session jamais
	users, err := s.directory(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "secret", users[0].Password)

	current, err := s.CurrentSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, *session, *current)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	_, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)

	_, err = s.SignUp(ctx, "Babita", "a@x.com", "autre", models.RoleFarmer)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// l'annuaire contient toujours une seule entrée pour cet email
	users, err := s.directory(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)
}

func TestSignInExactMatchOnly(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	_, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)
	require.NoError(t, s.SignOut(ctx, "ignoré"))

	_, err = s.SignIn(ctx, "a@x.com", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.SignIn(ctx, "inconnue@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := s.SignIn(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Asha", session.Name)
}

func TestSignOutIsIdempotent(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	session, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx, session.ID))
	require.NoError(t, s.SignOut(ctx, session.ID)) // déjà déconnectée : no-op

	current, err := s.CurrentSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	session, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)

	updated, err := s.UpdateProfile(ctx, session.ID, models.ProfilePatch{
		Name:    strPtr("Asha Patel"),
		Address: strPtr("12 Mandi Road, Pune"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Patel", updated.Name)
	assert.Equal(t, "12 Mandi Road, Pune", updated.Address)
	// champs non patchés inchangés
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, models.RoleBuyer, updated.Role)

	// l'annuaire est à jour et le mot de passe intact
	users, err := s.directory(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha Patel", users[0].Name)
	assert.Equal(t, "secret", users[0].Password)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	s, _ := newUserStore()
	ctx := context.Background()

	session, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)
	require.NoError(t, s.SignOut(ctx, session.ID))

	_, err = s.UpdateProfile(ctx, session.ID, models.ProfilePatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUpdateProfileUserGoneFromDirectory(t *testing.T) {
	s, client := newUserStore()
	ctx := context.Background()

	session, err := s.SignUp(ctx, "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)

	// annuaire écrasé hors flux normal : la session pointe dans le vide
	client.data[usersKey] = "[]"

	_, err = s.UpdateProfile(ctx, session.ID, models.ProfilePatch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCurrentSessionMalformedYieldsNone(t *testing.T) {
	s, client := newUserStore()
	client.data[sessionPrefix+"u1"] = "{cassé"

	current, err := s.CurrentSession(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSimulatedLatencyIsCancellable(t *testing.T) {
	client := newFakeClient()
	s := NewUserStore(NewKV(client), 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := s.SignIn(ctx, "a@x.com", "secret")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSimulatedLatencyElapses(t *testing.T) {
	client := newFakeClient()
	s := NewUserStore(NewKV(client), 5*time.Millisecond)

	_, err := s.SignUp(context.Background(), "Asha", "a@x.com", "secret", models.RoleBuyer)
	require.NoError(t, err)
}
