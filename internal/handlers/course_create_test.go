package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/courses-api/internal/middlewares"
	"github.com/sbilibin2017/courses-api/internal/models"
)

func authedRequest(method, target string, body []byte, user *models.UserDB) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if user != nil {
		req = req.WithContext(middlewares.SetUserToContext(context.Background(), user))
	}
	return req
}

func TestCourseCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Email: "john@example.com"}

	tests := []struct {
		name         string
		body         string
		user         *models.UserDB
		mockSetup    func(m *MockCourseCreator)
		expectedCode int
		expectedBody string
		location     string
	}{
		{
			name: "success",
			body: `{"title":"T","description":"D"}`,
			user: user,
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, ownerID int64, req models.CourseRequest) (int64, error) {
						assert.Equal(t, "T", *req.Title)
						assert.Equal(t, "D", *req.Description)
						return 11, nil
					})
			},
			expectedCode: http.StatusCreated,
			location:     "/api/courses/11",
		},
		{
			// Any userId in the body is ignored; the owner comes from the
			// authenticated identity.
			name: "client-supplied owner ignored",
			body: `{"title":"T","description":"D","userId":999}`,
			user: user,
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(int64(12), nil)
			},
			expectedCode: http.StatusCreated,
			location:     "/api/courses/12",
		},
		{
			name:         "missing title and description",
			body:         `{}`,
			user:         user,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["\"title\" is required","\"description\" is required"]}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			user:         user,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "no authenticated identity",
			body:         `{"title":"T","description":"D"}`,
			user:         nil,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"Access Denied"}`,
		},
		{
			name: "internal server error",
			body: `{"title":"T","description":"D"}`,
			user: user,
			mockSetup: func(m *MockCourseCreator) {
				m.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCourseCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCourseCreateHandler(mockSvc)
			req := authedRequest(http.MethodPost, "/api/courses", []byte(tt.body), tt.user)
			rr := httptest.NewRecorder()

			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.location != "" {
				assert.Equal(t, tt.location, rr.Header().Get("Location"))
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
