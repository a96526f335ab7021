// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is a domain-specific error returned when a seller is not found.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
// The application layer will depend on this interface, not the concrete implementation.
type SellerRepository interface {
	// FindByID retrieves a single seller by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByEmail retrieves a single seller by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// FindAll retrieves every seller record. Password hashes are included
	// on the entity; projecting them away is the caller's concern.
	FindAll(ctx context.Context) ([]*entity.Seller, error)

	// Create persists a new seller entity to the storage. The storage
	// enforces email uniqueness with a unique index; violations surface
	// as the domain conflict error.
	Create(ctx context.Context, seller *entity.Seller) error

	// Delete removes a seller record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
