// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the account entity representing a marketplace vendor.
// The email is the login identifier and is unique across all sellers;
// the password is held only as a one-way hash.
type Seller struct {
	ID           uuid.UUID  // Unique identifier, assigned by the store at creation.
	Name         string     // Display name.
	Email        string     // Login key; at most one Seller per email.
	PasswordHash string     // bcrypt hash of the password. Plaintext is never persisted.
	Image        string     // Path/URI of the uploaded profile asset.
	ProductList  []*Product // Products owned by this seller. Loaded on demand.
	CourseList   []*Course  // Courses owned by this seller. Loaded on demand.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}
