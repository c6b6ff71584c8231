package usecase

import (
	"context"

	"supportdesk/internal/domain/entity"
	"supportdesk/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
	}
}

type AuthResult struct {
	Token string
	Admin *entity.AdminProfile
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, uid, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, err
	}

	admin, err := uc.firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: token,
		Admin: admin,
	}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	return uc.firebaseAuth.RevokeSessions(ctx, uid)
}

func (uc *AuthUseCase) Profile(ctx context.Context, uid string) (*entity.AdminProfile, error) {
	return uc.firebaseAuth.GetUser(ctx, uid)
}

// CreateAdmin provisions a dashboard operator account and tags it with the
// admin claim. Used by the bootstrap command, not exposed over HTTP.
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, email, password, displayName string) (string, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, email, password, displayName)
	if err != nil {
		return "", err
	}

	if err := uc.firebaseAuth.SetAdminClaim(ctx, uid); err != nil {
		return "", err
	}

	return uid, nil
}
