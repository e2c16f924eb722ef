package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

//go:generate mockgen -source=course_get.go -destination=mock_course_get.go -package=handlers

// CourseGetter defines the interface that the service must implement.
type CourseGetter interface {
	Get(ctx context.Context, id int64) (*models.CourseWithOwner, error)
}

// NewCourseGetHandler returns an HTTP handler fetching one course by id.
// The body is a singleton array. No authentication required.
// @Summary Get a course
// @Description Returns a single course (as a one-element array) with the reduced owner projection
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {array} models.CourseResponse "Course with owner"
// @Failure 404 {object} models.MessageResponse "Course not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /courses/{id} [get]
func NewCourseGetHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			// A non-numeric id cannot match any course.
			writeCourseNotFound(w)
			return
		}

		course, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrCourseNotFound) {
				writeCourseNotFound(w)
				return
			}
			logger.Log.Errorw("failed to get course", "id", id, "error", err)
			writeInternalServerError(w)
			return
		}

		writeJSON(w, http.StatusOK, []models.CourseResponse{course.ToResponse()})
	}
}
