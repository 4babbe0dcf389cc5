package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

func newAuthServiceForTest(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeRepo[models.UserCredentials]{items: []models.UserCredentials{
		{ID: 1, Username: "admin", Password: string(hash), RoleName: "Admin"},
		{ID: 2, Username: "legacy", Password: "plain_pw", RoleName: "Employee"},
	}}
	return NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiry: time.Hour})
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newAuthServiceForTest(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "ADMIN", Password: "Password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.InDelta(t, 3600, resp.ExpiresIn, 2)
	assert.Empty(t, resp.User.Password)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginPlainPassword(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "legacy", Password: "plain_pw"})
	require.NoError(t, err)
}

func TestAuthServiceLoginRejects(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "wrong"})
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "Password123"})
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "admin"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestValidateToken(t *testing.T) {
	svc := newAuthServiceForTest(t)
	token, _, err := svc.IssueToken(models.UserCredentials{ID: 9, Username: "hr", RoleName: "HR"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHR, claims.Role)

	_, err = svc.ValidateToken(token + "tampered")
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "token expired", appErrors.Message(err))
}

func TestPasswordMatches(t *testing.T) {
	assert.False(t, passwordMatches("", ""))
	assert.True(t, passwordMatches("same", "same"))
	assert.False(t, passwordMatches("same", "Same"))
}
