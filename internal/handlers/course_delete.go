package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/middlewares"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

//go:generate mockgen -source=course_delete.go -destination=mock_course_delete.go -package=handlers

// CourseDeleter defines the interface that the service must implement.
type CourseDeleter interface {
	Delete(ctx context.Context, callerID, id int64) error
}

// NewCourseDeleteHandler returns an HTTP handler hard-deleting a course owned
// by the authenticated user.
// @Summary Delete a course
// @Description Deletes a course owned by the authenticated user
// @Tags courses
// @Param id path int true "Course id"
// @Success 204 "Deleted"
// @Failure 401 {object} models.MessageResponse "Access denied"
// @Failure 403 {object} models.ForbiddenResponse "Course owned by another user"
// @Failure 404 {object} models.MessageResponse "Course not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /courses/{id} [delete]
// @Security BasicAuth
func NewCourseDeleteHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		if err := svc.Delete(r.Context(), user.ID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				writeCourseNotFound(w)
			case errors.Is(err, services.ErrNotCourseOwner):
				writeJSON(w, http.StatusForbidden, models.ForbiddenResponse{
					Message:     "You can only delete your own courses.",
					CurrentUser: user.Email,
				})
			default:
				logger.Log.Errorw("failed to delete course", "id", id, "error", err)
				writeInternalServerError(w)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
