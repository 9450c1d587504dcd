package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an account able to authenticate against the API.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserChanges carries the profile fields an update may touch. Nil fields are
// left unchanged.
type UserChanges struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the change set would not modify anything.
func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
