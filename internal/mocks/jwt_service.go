package mocks

import (
	"context"
	"time"

	"github.com/tasktrack/api/internal/service/auth"
)

// MockJWTService is a configurable stub for auth.JWTService.
type MockJWTService struct {
	// Token is returned from GenerateToken when GenerateErr is nil.
	Token string
	// GenerateErr, when set, is returned from GenerateToken.
	GenerateErr error

	// Claims is returned from ValidateToken when ValidateErr is nil.
	Claims *auth.Claims
	// ValidateErr, when set, is returned from ValidateToken.
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{
		UserID:    1,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}
