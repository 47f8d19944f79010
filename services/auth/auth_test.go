package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/apperrors"
	"marhaba/database/seeders"
	"marhaba/models/user"
	"marhaba/store"
	authTypes "marhaba/types/auth"
)

var fixedNow = time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)

func newAuth(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(store.InitialState())
	st.Dispatch(seeders.InitialData())
	clock := func() time.Time { return fixedNow }
	return New(st, NewTokenIssuer("test-secret", clock), clock), st
}

func TestLogin(t *testing.T) {
	svc, st := newAuth(t)
	st.Dispatch(store.OpenModal{Modal: store.ModalAuth})

	res, err := svc.Login(authTypes.LoginRequest{Email: "provider@example.com", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, LoginSuccess, res.Status)
	require.NotNil(t, res.User)
	assert.Equal(t, int64(2), res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int(SessionTTL.Seconds()), res.ExpiresIn)

	state := st.GetState()
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "Sahara Adventures", state.CurrentUser.Name)
	assert.False(t, state.Modals.Auth)
}

func TestLogin_Failures(t *testing.T) {
	svc, st := newAuth(t)

	res, err := svc.Login(authTypes.LoginRequest{Email: "nobody@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, LoginUserNotFound, res.Status)
	assert.Empty(t, res.Token)

	res, err = svc.Login(authTypes.LoginRequest{Email: "tourist@example.com"})
	require.NoError(t, err)
	assert.Equal(t, LoginInvalidCredentials, res.Status)

	assert.Nil(t, st.GetState().CurrentUser)
}

func TestLogin_RememberMe(t *testing.T) {
	svc, _ := newAuth(t)

	res, err := svc.Login(authTypes.LoginRequest{Email: "tourist@example.com", Password: "x", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, int(RememberTTL.Seconds()), res.ExpiresIn)

	claims, err := svc.Tokens().Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(RememberTTL), claims.ExpiresAt.Time.UTC())
}

func TestSignUp(t *testing.T) {
	svc, st := newAuth(t)

	res, err := svc.SignUp(authTypes.RegisterRequest{
		Name: "Karim", Email: "karim@example.com", Password: "pw", Type: user.UserTypeProvider,
	})
	require.NoError(t, err)
	assert.Equal(t, LoginSuccess, res.Status)
	assert.Equal(t, fixedNow.UnixMilli(), res.User.ID)

	state := st.GetState()
	assert.Len(t, state.Users, 4)
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "karim@example.com", state.CurrentUser.Email)

	_, err = svc.SignUp(authTypes.RegisterRequest{
		Name: "Karim", Email: "karim@example.com", Password: "pw", Type: user.UserTypeTourist,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeConflict))
}

func TestSignUp_IDsStayUnique(t *testing.T) {
	svc, st := newAuth(t)

	a, err := svc.SignUp(authTypes.RegisterRequest{Name: "A", Email: "a@example.com", Password: "pw", Type: user.UserTypeTourist})
	require.NoError(t, err)
	b, err := svc.SignUp(authTypes.RegisterRequest{Name: "B", Email: "b@example.com", Password: "pw", Type: user.UserTypeTourist})
	require.NoError(t, err)

	assert.NotEqual(t, a.User.ID, b.User.ID)
	assert.Len(t, st.GetState().Users, 5)
}

func TestLogout(t *testing.T) {
	svc, st := newAuth(t)
	_, err := svc.Login(authTypes.LoginRequest{Email: "tourist@example.com", Password: "x"})
	require.NoError(t, err)

	svc.Logout()

	assert.Nil(t, st.GetState().CurrentUser)
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("secret", func() time.Time { return fixedNow })
	u := user.User{ID: 7, Name: "Sara", Type: user.UserTypeTourist}

	token, err := issuer.Issue(u, time.Hour)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Sara", claims.Name)
	assert.Equal(t, user.UserTypeTourist, claims.Role)
	assert.Equal(t, "7", claims.Subject)

	_, err = NewTokenIssuer("other", func() time.Time { return fixedNow }).Parse(token)
	assert.Error(t, err, "wrong secret")

	_, err = NewTokenIssuer("secret", func() time.Time { return fixedNow.Add(2 * time.Hour) }).Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
