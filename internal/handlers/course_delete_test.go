package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/courses-api/internal/models"
	"github.com/sbilibin2017/courses-api/internal/services"
)

func TestCourseDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Email: "john@example.com"}

	tests := []struct {
		name         string
		target       string
		user         *models.UserDB
		mockSetup    func(m *MockCourseDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "success",
			target: "/api/courses/5",
			user:   user,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7), int64(5)).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "course not found",
			target: "/api/courses/42",
			user:   user,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7), int64(42)).Return(services.ErrCourseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Course Not Found!"}`,
		},
		{
			name:   "not the owner",
			target: "/api/courses/5",
			user:   user,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7), int64(5)).Return(services.ErrNotCourseOwner)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"You can only delete your own courses.","currentUser":"john@example.com"}`,
		},
		{
			name:         "non-numeric id",
			target:       "/api/courses/abc",
			user:         user,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Course Not Found!"}`,
		},
		{
			name:         "no authenticated identity",
			target:       "/api/courses/5",
			user:         nil,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Access Denied"}`,
		},
		{
			name:   "internal server error",
			target: "/api/courses/5",
			user:   user,
			mockSetup: func(m *MockCourseDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(7), int64(5)).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Delete("/api/courses/{id}", NewCourseDeleteHandler(mockSvc))

			req := authedRequest(http.MethodDelete, tt.target, nil, tt.user)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
