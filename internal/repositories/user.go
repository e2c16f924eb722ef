package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
)

// ErrDuplicateEmail is returned when an insert trips the users.email UNIQUE
// constraint. The constraint is what actually closes the check-then-act race
// in registration; the pre-check only exists for a friendlier common path.
var ErrDuplicateEmail = errors.New("email address already taken")

// pgUniqueViolation is SQLSTATE 23505.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail looks up a user by exact, case-sensitive email match.
// Returns (nil, nil) when no user has that email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Debugw("user query",
		"query", compact(query),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. Users are never updated or deleted, so this is a
// plain insert; a concurrent duplicate registration surfaces as
// ErrDuplicateEmail via the unique constraint.
func (r *UserWriteRepository) Save(ctx context.Context, firstName, lastName, email, passwordHash string) error {
	const query = `
		INSERT INTO users (first_name, last_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{firstName, lastName, email, passwordHash}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("user query",
		"query", compact(query),
		"args", []any{firstName, lastName, email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateEmail
	}

	return err
}
