package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
)

//go:generate mockgen -source=course_list.go -destination=mock_course_list.go -package=handlers

// CourseLister defines the interface that the service must implement.
type CourseLister interface {
	List(ctx context.Context) ([]models.CourseWithOwner, error)
}

// NewCourseListHandler returns an HTTP handler listing all courses.
// @Summary List courses
// @Description Returns all courses, each with the reduced owner projection. No authentication required.
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseResponse "Courses with owners"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /courses [get]
func NewCourseListHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list courses", "error", err)
			writeInternalServerError(w)
			return
		}

		resp := make([]models.CourseResponse, 0, len(courses))
		for _, c := range courses {
			resp = append(resp, c.ToResponse())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
