package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/courses-api/internal/models"
)

func TestCourseListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimated := "12 hours"
	courses := []models.CourseWithOwner{
		{
			ID:             1,
			Title:          "T1",
			Description:    "D1",
			EstimatedTime:  &estimated,
			UserID:         7,
			OwnerFirstName: "John",
			OwnerLastName:  "Doe",
			OwnerEmail:     "john@example.com",
		},
		{
			ID:             2,
			Title:          "T2",
			Description:    "D2",
			UserID:         8,
			OwnerFirstName: "Jane",
			OwnerLastName:  "Roe",
			OwnerEmail:     "jane@example.com",
		},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(courses, nil)

		handler := NewCourseListHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []models.CourseResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "T1", resp[0].Title)
		assert.Equal(t, int64(7), resp[0].User.ID)
		assert.Equal(t, "john@example.com", resp[0].User.EmailAddress)
		// The hash never appears anywhere in the payload.
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("empty list", func(t *testing.T) {
		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.CourseWithOwner{}, nil)

		handler := NewCourseListHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockCourseLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		handler := NewCourseListHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
	})
}
