package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/mocks"
	"supportdesk/pkg/errors"
)

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	uc := NewAuthUseCase(authClient)

	authClient.On("SignInWithEmailPassword", "admin@example.com", "secret").
		Return("id-token", "uid-1", nil).Once()
	authClient.On("GetUser", mock.Anything, "uid-1").
		Return(&entity.AdminProfile{UID: "uid-1", Email: "admin@example.com"}, nil).Once()

	result, err := uc.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, "uid-1", result.Admin.UID)
}

func TestLoginPropagatesCredentialError(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	uc := NewAuthUseCase(authClient)

	authClient.On("SignInWithEmailPassword", "admin@example.com", "wrong").
		Return("", "", errors.InvalidCredentials(nil)).Once()

	_, err := uc.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
	authClient.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestLogoutRevokesSessions(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	uc := NewAuthUseCase(authClient)

	authClient.On("RevokeSessions", mock.Anything, "uid-1").Return(nil).Once()

	require.NoError(t, uc.Logout(context.Background(), "uid-1"))
	authClient.AssertExpectations(t)
}

func TestCreateAdminSetsClaim(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	uc := NewAuthUseCase(authClient)

	authClient.On("CreateUser", mock.Anything, "admin@example.com", "secret", "Admin").
		Return("uid-1", nil).Once()
	authClient.On("SetAdminClaim", mock.Anything, "uid-1").Return(nil).Once()

	uid, err := uc.CreateAdmin(context.Background(), "admin@example.com", "secret", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	authClient.AssertExpectations(t)
}

func TestCreateAdminStopsOnCreateFailure(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	uc := NewAuthUseCase(authClient)

	authClient.On("CreateUser", mock.Anything, "taken@example.com", "secret", "Admin").
		Return("", errors.EmailAlreadyInUse(nil)).Once()

	_, err := uc.CreateAdmin(context.Background(), "taken@example.com", "secret", "Admin")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeEmailAlreadyInUse))
	authClient.AssertNotCalled(t, "SetAdminClaim", mock.Anything, mock.Anything)
}
