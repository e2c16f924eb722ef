// Package handlers contains one HTTP handler factory per endpoint. Handlers
// decode and validate the request, call a narrow service interface, and
// translate service error variants into status codes. Validation always runs
// before existence and ownership checks.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeInternalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, models.MessageResponse{
		Message: "Internal Server Error",
	})
}

func writeCourseNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, models.MessageResponse{
		Message: "Course Not Found!",
	})
}
