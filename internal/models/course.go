package models

import "time"

// CourseDB represents a course record in the database
type CourseDB struct {
	ID              int64     `db:"id"`               // Primary key
	Title           string    `db:"title"`            // Course title
	Description     string    `db:"description"`      // Course description
	EstimatedTime   *string   `db:"estimated_time"`   // Optional estimate
	MaterialsNeeded *string   `db:"materials_needed"` // Optional materials list
	UserID          int64     `db:"user_id"`          // Owning user, immutable after insert
	CreatedAt       time.Time `db:"created_at"`       // Creation timestamp
	UpdatedAt       time.Time `db:"updated_at"`       // Last update timestamp
}

// CourseWithOwner is a course row joined with the reduced projection
// of its owner. Timestamps and the password hash are never selected.
type CourseWithOwner struct {
	ID              int64   `db:"id"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	EstimatedTime   *string `db:"estimated_time"`
	MaterialsNeeded *string `db:"materials_needed"`
	UserID          int64   `db:"user_id"`
	OwnerFirstName  string  `db:"owner_first_name"`
	OwnerLastName   string  `db:"owner_last_name"`
	OwnerEmail      string  `db:"owner_email"`
}

// CourseOwner is the reduced owner projection included in course responses
// swagger:model CourseOwner
type CourseOwner struct {
	// Owner id
	// example: 1
	ID int64 `json:"id"`

	// Given name
	// example: John
	FirstName string `json:"firstName"`

	// Family name
	// example: Doe
	LastName string `json:"lastName"`

	// Email address
	// example: john@example.com
	EmailAddress string `json:"emailAddress"`
}

// CourseResponse represents a course with its owner
// swagger:model CourseResponse
type CourseResponse struct {
	// Course id
	// example: 1
	ID int64 `json:"id"`

	// Title
	// example: Build a Basic Bookcase
	Title string `json:"title"`

	// Description
	// example: High-end furniture projects are great...
	Description string `json:"description"`

	// Estimated time
	// example: 12 hours
	EstimatedTime *string `json:"estimatedTime"`

	// Materials needed
	// example: 1/2 x 3/4 inch parting strip
	MaterialsNeeded *string `json:"materialsNeeded"`

	// Owning user id
	// example: 1
	UserID int64 `json:"userId"`

	// Reduced owner projection
	User CourseOwner `json:"user"`
}

// ToResponse maps a joined row to the response shape.
func (c CourseWithOwner) ToResponse() CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User: CourseOwner{
			ID:           c.UserID,
			FirstName:    c.OwnerFirstName,
			LastName:     c.OwnerLastName,
			EmailAddress: c.OwnerEmail,
		},
	}
}

// CourseRequest represents the JSON body for creating or updating a course.
// The presence check is intentionally "exists" only: an empty string passes,
// a missing key does not. Any userId in the body is ignored; the owner always
// comes from the authenticated identity.
// swagger:model CourseRequest
type CourseRequest struct {
	// Title
	// required: true
	// example: Build a Basic Bookcase
	Title *string `json:"title" validate:"required"`

	// Description
	// required: true
	// example: High-end furniture projects are great...
	Description *string `json:"description" validate:"required"`

	// Estimated time
	// example: 12 hours
	EstimatedTime *string `json:"estimatedTime"`

	// Materials needed
	// example: 1/2 x 3/4 inch parting strip
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// Validate collects all violated checks in field order.
func (r CourseRequest) Validate() []string {
	return validateRequest(r)
}
