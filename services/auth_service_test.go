package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/services"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	st, err := repository.NewMemStorage()
	require.NoError(t, err)
	return services.NewAuthService(st, "test-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	token, admin, err := svc.Login(services.LoginReq{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "admin", admin.Role)

	me, err := svc.Me(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Username, me.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(services.LoginReq{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(services.LoginReq{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(services.LoginReq{Username: "", Password: ""})
	assert.ErrorIs(t, err, services.ErrValidation)
}
