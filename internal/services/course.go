package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
)

//go:generate mockgen -source=course.go -destination=mock_course.go -package=services

// Error variables
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotCourseOwner = errors.New("course is owned by another user")
)

// CourseReader defines read-only operations for courses.
type CourseReader interface {
	ListWithOwner(ctx context.Context) ([]models.CourseWithOwner, error)
	GetByID(ctx context.Context, id int64) (*models.CourseWithOwner, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, title, description string, estimatedTime, materialsNeeded *string, userID int64) (int64, error)
	Update(ctx context.Context, id int64, title, description string, estimatedTime, materialsNeeded *string) error
	Delete(ctx context.Context, id int64) error
}

// CourseService handles course CRUD and enforces the ownership rule: only the
// owning user may mutate or delete a course.
type CourseService struct {
	reader CourseReader
	writer CourseWriter
}

// NewCourseService creates a new CourseService instance.
func NewCourseService(reader CourseReader, writer CourseWriter) *CourseService {
	return &CourseService{
		reader: reader,
		writer: writer,
	}
}

// List returns all courses with their owners.
func (svc *CourseService) List(ctx context.Context) ([]models.CourseWithOwner, error) {
	return svc.reader.ListWithOwner(ctx)
}

// Get returns one course with its owner.
func (svc *CourseService) Get(ctx context.Context, id int64) (*models.CourseWithOwner, error) {
	course, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "id", id, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// Create persists a new course owned by ownerID. The owner always comes from
// the authenticated identity, never from the request body.
func (svc *CourseService) Create(ctx context.Context, ownerID int64, req models.CourseRequest) (int64, error) {
	id, err := svc.writer.Save(ctx, *req.Title, *req.Description, req.EstimatedTime, req.MaterialsNeeded, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to save course", "owner", ownerID, "error", err)
		return 0, err
	}
	return id, nil
}

// Update applies a partial update to a course owned by callerID. The stored
// row is untouched when the course is missing or owned by someone else.
func (svc *CourseService) Update(ctx context.Context, callerID, id int64, req models.CourseRequest) error {
	course, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "id", id, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if course.UserID != callerID {
		return ErrNotCourseOwner
	}

	return svc.writer.Update(ctx, id, *req.Title, *req.Description, req.EstimatedTime, req.MaterialsNeeded)
}

// Delete hard-deletes a course owned by callerID.
func (svc *CourseService) Delete(ctx context.Context, callerID, id int64) error {
	course, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "id", id, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if course.UserID != callerID {
		return ErrNotCourseOwner
	}

	return svc.writer.Delete(ctx, id)
}
