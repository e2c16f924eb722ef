package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/courses-api/internal/models"
)

func TestCurrentUserHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := &models.UserDB{
			ID:           7,
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john@example.com",
			PasswordHash: "$2a$10$somethingsecret",
		}

		handler := NewCurrentUserHandler()
		req := authedRequest(http.MethodGet, "/api/users", nil, user)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"name":"John Doe","emailAddress":"john@example.com"}`, rr.Body.String())
		assert.NotContains(t, rr.Body.String(), user.PasswordHash)
	})

	t.Run("no authenticated identity", func(t *testing.T) {
		handler := NewCurrentUserHandler()
		req := authedRequest(http.MethodGet, "/api/users", nil, nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Access Denied"}`, rr.Body.String())
	})
}
