package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

//go:generate mockgen -source=user_create.go -destination=mock_user_create.go -package=handlers

// UserRegisterer defines the interface that the service must implement.
type UserRegisterer interface {
	Register(ctx context.Context, firstName, lastName, email, password string) error
}

// NewUserCreateHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email address must be unique; the password is hashed before storing.
// @Tags users
// @Accept json
// @Param createUserRequest body models.CreateUserRequest true "User registration request"
// @Success 201 "User created, Location: /"
// @Failure 400 {object} models.ValidationErrorResponse "Validation failure or duplicate email"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /users [post]
func NewUserCreateHandler(svc UserRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest
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

		err := svc.Register(r.Context(), *req.FirstName, *req.LastName, *req.EmailAddress, *req.Password)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeJSON(w, http.StatusBadRequest, models.MessageResponse{
					Message: "User already exists",
				})
				return
			}
			logger.Log.Errorw("failed to register user", "error", err)
			writeInternalServerError(w)
			return
		}

		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}
