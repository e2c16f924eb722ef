package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// ErrUserAlreadyExists is returned when the email address is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, firstName, lastName, email, passwordHash string) error
}

// UserService handles registration.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user with a hashed password. The duplicate pre-check
// covers the common path; a concurrent duplicate still lands on the unique
// constraint and comes back as ErrUserAlreadyExists, never as a raw failure.
func (svc *UserService) Register(ctx context.Context, firstName, lastName, email, password string) error {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	if err := svc.writer.Save(ctx, firstName, lastName, email, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			logger.Log.Warnw("concurrent duplicate registration", "email", email)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "error", err)
		return err
	}

	return nil
}
