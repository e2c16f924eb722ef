package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
)

type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// courseWithOwnerColumns selects the reduced owner projection alongside the
// course. Audit timestamps and the password hash stay out of the select list.
const courseWithOwnerColumns = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	u.first_name AS owner_first_name,
	u.last_name AS owner_last_name,
	u.email AS owner_email
`

// ListWithOwner returns all courses, each joined with its owner.
func (r *CourseReadRepository) ListWithOwner(ctx context.Context) ([]models.CourseWithOwner, error) {
	const query = `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id
	`

	courses := []models.CourseWithOwner{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &courses, query)

	logger.Log.Debugw("course query",
		"query", compact(query),
		"rows", len(courses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID returns one course with its owner, or (nil, nil) when no course has
// that id.
func (r *CourseReadRepository) GetByID(ctx context.Context, id int64) (*models.CourseWithOwner, error) {
	const query = `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	var course models.CourseWithOwner
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &course, query, id)

	logger.Log.Debugw("course query",
		"query", compact(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &course, nil
}

type CourseWriteRepository struct {
	db *sqlx.DB
}

func NewCourseWriteRepository(db *sqlx.DB) *CourseWriteRepository {
	return &CourseWriteRepository{db: db}
}

// Save inserts a new course owned by userID and returns the generated id.
func (r *CourseWriteRepository) Save(ctx context.Context, title, description string, estimatedTime, materialsNeeded *string, userID int64) (int64, error) {
	const query = `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	args := []any{title, description, estimatedTime, materialsNeeded, userID}

	var id int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &id, query, args...)

	logger.Log.Debugw("course query",
		"query", compact(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update writes title and description unconditionally and the optional fields
// only when the request carried them. The owner column is never touched.
func (r *CourseWriteRepository) Update(ctx context.Context, id int64, title, description string, estimatedTime, materialsNeeded *string) error {
	const query = `
		UPDATE courses
		SET title = $1,
		    description = $2,
		    estimated_time = COALESCE($3, estimated_time),
		    materials_needed = COALESCE($4, materials_needed),
		    updated_at = NOW()
		WHERE id = $5
	`
	args := []any{title, description, estimatedTime, materialsNeeded, id}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("course query",
		"query", compact(query),
		"args", args,
		"error", err,
	)

	return err
}

// Delete hard-deletes a course.
func (r *CourseWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM courses WHERE id = $1`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Debugw("course query",
		"query", compact(query),
		"args", []any{id},
		"error", err,
	)

	return err
}
