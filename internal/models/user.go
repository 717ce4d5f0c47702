package models

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated identity as seen by the rest of the app.
// It never carries the password.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role,omitempty"`
}

// Credential is one record of the mock identity list. Immutable at runtime;
// email is unique within a store.
type Credential struct {
	ID       string
	Email    string
	Password string
	Username string
	Role     Role
}

// User strips the secret field from a matched credential.
func (c Credential) User() User {
	return User{
		ID:       c.ID,
		Email:    c.Email,
		Username: c.Username,
		Role:     c.Role,
	}
}
