package domain

import "time"

// Role enumerates account roles. Authorization decisions compare Role
// values directly, never raw strings.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the domain model for blog accounts. Name and Email describe the
// linked person profile; Username is the login identifier and token subject.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
