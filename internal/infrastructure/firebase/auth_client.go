package firebase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	"supportdesk/internal/domain/entity"
	"supportdesk/pkg/errors"
)

type FirebaseAuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:     client,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", mapCreateUserError(err)
	}

	return user.UID, nil
}

// SetAdminClaim marks an account as a dashboard administrator via a custom
// claim, picked up by the auth middleware on the next token refresh.
func (f *FirebaseAuthClient) SetAdminClaim(ctx context.Context, uid string) error {
	if err := f.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{"admin": true}); err != nil {
		return errors.Internal("Failed to set admin claim", err)
	}
	return nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return token, nil
}

func (f *FirebaseAuthClient) GetUser(ctx context.Context, uid string) (*entity.AdminProfile, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to load user record", err)
	}

	return &entity.AdminProfile{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   time.UnixMilli(user.UserMetadata.CreationTimestamp),
		LastSignIn:  time.UnixMilli(user.UserMetadata.LastLogInTimestamp),
	}, nil
}

// RevokeSessions invalidates all refresh tokens for the account. Existing ID
// tokens stay valid until they expire.
func (f *FirebaseAuthClient) RevokeSessions(ctx context.Context, uid string) error {
	if err := f.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke sessions", err)
	}
	return nil
}

func mapCreateUserError(err error) error {
	if auth.IsEmailAlreadyExists(err) {
		return errors.EmailAlreadyInUse(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return errors.InvalidEmail(err)
	case strings.Contains(msg, "password"):
		return errors.WeakPassword(err)
	}
	return errors.Internal("Failed to create user", err)
}
