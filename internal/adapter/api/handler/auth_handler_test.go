package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportdesk/internal/domain/entity"
	"supportdesk/internal/mocks"
	"supportdesk/internal/usecase"
	"supportdesk/pkg/errors"
)

func TestLoginHandlerSuccess(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	authClient.On("SignInWithEmailPassword", "admin@example.com", "secret").
		Return("id-token", "uid-1", nil).Once()
	authClient.On("GetUser", mock.Anything, "uid-1").
		Return(&entity.AdminProfile{UID: "uid-1", Email: "admin@example.com"}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"email":"admin@example.com","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"id-token"`)
	assert.Contains(t, rec.Body.String(), `"uid":"uid-1"`)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	authClient.On("SignInWithEmailPassword", "admin@example.com", "wrong").
		Return("", "", errors.InvalidCredentials(nil)).Once()

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"INVALID_CREDENTIALS"`)
}

func TestLoginHandlerValidatesEmail(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"email":"not-an-email","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	authClient.AssertNotCalled(t, "SignInWithEmailPassword", mock.Anything, mock.Anything)
}

func TestLogoutHandlerRevokesSessions(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	authClient.On("RevokeSessions", mock.Anything, "uid-1").Return(nil).Once()

	c, rec := newTestContext(http.MethodPost, "/v1/auth/logout", "")
	c.Set("uid", "uid-1")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	authClient.AssertExpectations(t)
}

func TestLogoutHandlerRequiresAuth(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	c, rec := newTestContext(http.MethodPost, "/v1/auth/logout", "")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeHandlerReturnsProfile(t *testing.T) {
	authClient := new(mocks.AuthClientMock)
	h := NewAuthHandler(usecase.NewAuthUseCase(authClient))

	authClient.On("GetUser", mock.Anything, "uid-1").
		Return(&entity.AdminProfile{UID: "uid-1", Email: "admin@example.com", DisplayName: "Admin"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/v1/auth/me", "")
	c.Set("uid", "uid-1")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"Admin"`)
}
