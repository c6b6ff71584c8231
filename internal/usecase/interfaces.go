package usecase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"supportdesk/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SetAdminClaim(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*entity.AdminProfile, error)
	RevokeSessions(ctx context.Context, uid string) error
	SignInWithEmailPassword(email, password string) (idToken string, uid string, err error)
}
