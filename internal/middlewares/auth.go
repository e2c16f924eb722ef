package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/courses-api/internal/logger"
	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Authenticator resolves Basic credentials into a user record.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserDB, error)
}

// BasicAuthMiddleware returns a middleware that authenticates requests with
// HTTP Basic credentials (email as the username). The resolved user is
// attached to the request context. Every rejection looks the same to the
// client; the specific reason is only logged.
func BasicAuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email, password, ok := r.BasicAuth()
			if !ok {
				logger.Log.Warnw("auth header not found", "uri", r.RequestURI)
				writeAccessDenied(w)
				return
			}

			user, err := auth.Authenticate(ctx, email, password)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrUserDoesNotExist):
					logger.Log.Warnw("user not found", "email", email)
					writeAccessDenied(w)
				case errors.Is(err, services.ErrInvalidCredentials):
					logger.Log.Warnw("authentication failure", "email", email)
					writeAccessDenied(w)
				default:
					logger.Log.Errorw("authentication error", "email", email, "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.MessageResponse{
						Message: "Internal Server Error",
					})
				}
				return
			}

			logger.Log.Infow("authentication successful", "email", user.Email)
			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeAccessDenied(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.MessageResponse{Message: "Access Denied"})
}

// userContextKey is an unexported type for the identity context key
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass the auth middleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
