package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `db:"id"`            // Primary key
	FirstName    string    `db:"first_name"`    // Given name
	LastName     string    `db:"last_name"`     // Family name
	Email        string    `db:"email"`         // Unique email address
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never serialized
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// CreateUserRequest represents the JSON body for user registration.
// Pointer fields distinguish a missing key from an empty value.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Given name
	// required: true
	// example: John
	FirstName *string `json:"firstName" validate:"required,min=1"`

	// Family name
	// required: true
	// example: Doe
	LastName *string `json:"lastName" validate:"required,min=1"`

	// Email address, used as the Basic auth identifier
	// required: true
	// example: john@example.com
	EmailAddress *string `json:"emailAddress" validate:"required,email"`

	// Plaintext password, 8-20 characters
	// required: true
	// example: secret123
	Password *string `json:"password" validate:"required,min=8,max=20"`
}

// Validate collects all violated checks in field order.
func (r CreateUserRequest) Validate() []string {
	return validateRequest(r)
}

// CurrentUserResponse represents the authenticated user's own profile
// swagger:model CurrentUserResponse
type CurrentUserResponse struct {
	// Display name
	// example: John Doe
	Name string `json:"name"`

	// Email address
	// example: john@example.com
	EmailAddress string `json:"emailAddress"`
}
