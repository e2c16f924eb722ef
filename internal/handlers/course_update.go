package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/middlewares"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

//go:generate mockgen -source=course_update.go -destination=mock_course_update.go -package=handlers

// CourseUpdater defines the interface that the service must implement.
type CourseUpdater interface {
	Update(ctx context.Context, callerID, id int64, req models.CourseRequest) error
}

// NewCourseUpdateHandler returns an HTTP handler updating a course. Validation
// runs before the existence and ownership checks: a malformed body against a
// nonexistent course still answers 400.
// @Summary Update a course
// @Description Applies a partial update to a course owned by the authenticated user
// @Tags courses
// @Accept json
// @Param id path int true "Course id"
// @Param courseRequest body models.CourseRequest true "Course fields"
// @Success 204 "Updated"
// @Failure 400 {object} models.ValidationErrorResponse "Missing required fields"
// @Failure 401 {object} models.MessageResponse "Access denied"
// @Failure 403 {object} models.ForbiddenResponse "Course owned by another user"
// @Failure 404 {object} models.MessageResponse "Course not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /courses/{id} [put]
// @Security BasicAuth
func NewCourseUpdateHandler(svc CourseUpdater) http.HandlerFunc {
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

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeCourseNotFound(w)
			return
		}

		if err := svc.Update(r.Context(), user.ID, id, req); err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				writeCourseNotFound(w)
			case errors.Is(err, services.ErrNotCourseOwner):
				writeJSON(w, http.StatusForbidden, models.ForbiddenResponse{
					Message:     "You can only update your own courses.",
					CurrentUser: user.Email,
				})
			default:
				logger.Log.Errorw("failed to update course", "id", id, "error", err)
				writeInternalServerError(w)
			}
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
