package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/middlewares"
	"github.com/sbilibin2017/courses-api/internal/models"
)

//go:generate mockgen -source=course_create.go -destination=mock_course_create.go -package=handlers

// CourseCreator defines the interface that the service must implement.
type CourseCreator interface {
	Create(ctx context.Context, ownerID int64, req models.CourseRequest) (int64, error)
}

// NewCourseCreateHandler returns an HTTP handler creating a course owned by
// the authenticated user.
// @Summary Create a course
// @Description Creates a course. The owner is the authenticated user; any userId in the body is ignored.
// @Tags courses
// @Accept json
// @Param courseRequest body models.CourseRequest true "Course fields"
// @Success 201 "Created, Location header points at the new course"
// @Failure 400 {object} models.ValidationErrorResponse "Missing required fields"
// @Failure 401 {object} models.MessageResponse "Access denied"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /courses [post]
// @Security BasicAuth
func NewCourseCreateHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{
				Message: "Invalid request body",
			})
			return
		}

		if msgs := req.Validate(); len(msgs) > 0 {
			writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{Errors: msgs})
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Access Denied"})
			return
		}

		id, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			logger.Log.Errorw("failed to create course", "owner", user.ID, "error", err)
			writeInternalServerError(w)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", id))
		w.WriteHeader(http.StatusCreated)
	}
}
