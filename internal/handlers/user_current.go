package handlers

import (
	"fmt"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/middlewares"
	"github.com/sbilibin2017/courses-api/internal/models"
)

// NewCurrentUserHandler returns an HTTP handler for the authenticated user's
// own profile. Only the display name and email leave the server; the hash and
// audit timestamps never do.
// @Summary Get current user
// @Description Returns the display name and email of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} models.CurrentUserResponse "Current user"
// @Failure 401 {object} models.MessageResponse "Access denied"
// @Router /users [get]
// @Security BasicAuth
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Access Denied"})
			return
		}

		writeJSON(w, http.StatusOK, models.CurrentUserResponse{
			Name:         fmt.Sprintf("%s %s", user.FirstName, user.LastName),
			EmailAddress: user.Email,
		})
	}
}
