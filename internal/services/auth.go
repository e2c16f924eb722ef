package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthUserReader defines the lookup the authenticator needs.
type AuthUserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AuthService resolves Basic credentials into a stored user record.
type AuthService struct {
	reader AuthUserReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader) *AuthService {
	return &AuthService{reader: reader}
}

// Authenticate looks the user up by exact email match and compares the
// supplied plaintext against the stored bcrypt hash. The comparison is
// constant-time inside bcrypt.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
