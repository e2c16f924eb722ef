package models

// MessageResponse is the generic error body
// swagger:model MessageResponse
type MessageResponse struct {
	// Error message
	// example: Course Not Found!
	Message string `json:"message"`
}

// ForbiddenResponse is returned when an authenticated user targets a course
// owned by someone else. The identity is already established, so the body
// names the current user.
// swagger:model ForbiddenResponse
type ForbiddenResponse struct {
	// Error message
	// example: You can only update your own courses.
	Message string `json:"message"`

	// Email of the authenticated user
	// example: john@example.com
	CurrentUser string `json:"currentUser"`
}

// ValidationErrorResponse carries the ordered list of violated checks
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Violated check messages, in field order
	// example: ["\"title\" is required"]
	Errors []string `json:"errors"`
}
