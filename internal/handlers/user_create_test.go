package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/courses-api/internal/services"
)

func TestUserCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserRegisterer)
		expectedCode int
		expectedBody string
		location     string
	}{
		{
			name: "success",
			body: `{"firstName":"John","lastName":"Doe","emailAddress":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John", "Doe", "john@example.com", "secret123").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			location:     "/",
		},
		{
			name:         "password too short",
			body:         `{"firstName":"John","lastName":"Doe","emailAddress":"john@example.com","password":"short"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["\"password\" should be between 8 - 20 characters"]}`,
		},
		{
			name:         "everything missing",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["\"firstName\" is required","\"lastName\" is required","\"emailAddress\" is required","\"password\" is required"]}`,
		},
		{
			name:         "invalid email",
			body:         `{"firstName":"John","lastName":"Doe","emailAddress":"nope","password":"secret123"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"errors":["Please Provide a valid \"emailAddress\""]}`,
		},
		{
			name: "user already exists",
			body: `{"firstName":"John","lastName":"Doe","emailAddress":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John", "Doe", "john@example.com", "secret123").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"User already exists"}`,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name: "internal server error",
			body: `{"firstName":"John","lastName":"Doe","emailAddress":"john@example.com","password":"secret123"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John", "Doe", "john@example.com", "secret123").
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUserCreateHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
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
