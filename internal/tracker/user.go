package tracker

import "strings"

// DefaultRole is assigned when a user is created without an explicit role.
const DefaultRole = "User"

// User is a person tasks can be assigned to.
//
// The id is generated at creation and never changes. Name, email, and
// role are validated once at construction; updates applied later through
// the engine do not re-validate (see Engine.UpdateUser).
type User struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Role  string `json:"role" yaml:"role"`
}

// newUser constructs and validates a User.
//
// Validation rules:
//   - name must be non-empty after trimming whitespace
//   - email must be non-empty after trimming whitespace
//   - email must contain an "@"
//
// The raw (untrimmed) values are stored; trimming is only a validation
// concern.
func newUser(id, name, email, role string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError(ErrCodeEmptyName, "name", "user name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, newValidationError(ErrCodeEmptyEmail, "email", "user email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, newValidationError(ErrCodeInvalidEmail, "email", "invalid email format")
	}

	if role == "" {
		role = DefaultRole
	}

	return &User{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
