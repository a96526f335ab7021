// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can assert in a session token.
type Role string

const (
	// RoleSeller indicates a marketplace vendor account.
	RoleSeller Role = "seller"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleSeller
}
