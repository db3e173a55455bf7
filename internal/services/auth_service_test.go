package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/clients/fake"
	"github.com/yoga-studio/front/internal/models"
)

func TestAuthService_LoginStoresSession(t *testing.T) {
	info := adminInfo()
	authClient := &fake.MockAuthClient{
		LoginFunc: func(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
			assert.Equal(t, "yoga@studio.com", req.Email)
			return &info, nil
		},
	}
	session := NewSessionService(nil)
	svc := NewAuthService(authClient, session, nil)

	got, err := svc.Login(context.Background(), models.LoginRequest{Email: "yoga@studio.com", Password: "test!12345"})
	require.NoError(t, err)
	assert.Equal(t, info, *got)
	assert.True(t, session.IsLogged())
}

func TestAuthService_RefusedLoginLeavesStateUntouched(t *testing.T) {
	authClient := &fake.MockAuthClient{
		LoginFunc: func(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
			return nil, clients.NewStatusError("POST", "/api/auth/login", 401, "Bad credentials")
		},
	}
	session := NewSessionService(nil)
	var emitted []bool
	session.Subscribe(func(logged bool) { emitted = append(emitted, logged) })
	svc := NewAuthService(authClient, session, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "yoga@studio.com", Password: "nope"})
	require.Error(t, err)
	assert.True(t, clients.IsUnauthorized(err))
	assert.False(t, session.IsLogged())
	assert.Equal(t, []bool{false}, emitted)
}

func TestAuthService_RegisterWrapsErrors(t *testing.T) {
	cause := clients.NewStatusError("POST", "/api/auth/register", 400, "Error: Email is already taken!")
	authClient := &fake.MockAuthClient{
		RegisterFunc: func(ctx context.Context, req models.RegisterRequest) error {
			return cause
		},
	}
	svc := NewAuthService(authClient, NewSessionService(nil), nil)

	err := svc.Register(context.Background(), models.RegisterRequest{Email: "yoga@studio.com"})
	assert.True(t, errors.Is(err, cause))
	assert.True(t, clients.IsBadRequest(err))
}

func TestAuthService_Logout(t *testing.T) {
	session := NewSessionService(nil)
	session.LogIn(adminInfo())
	svc := NewAuthService(&fake.MockAuthClient{}, session, nil)

	svc.Logout()
	assert.False(t, session.IsLogged())
}
