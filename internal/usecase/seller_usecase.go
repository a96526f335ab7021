// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new seller.
// Structural validation (shape, email format, password rules) happens at the
// transport boundary before this input is constructed.
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	ImagePath string // Path produced by the upload middleware.
}

// LoginInput defines the data required for a seller to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SellerView is the password-free projection of a seller record.
type SellerView struct {
	SellerID uuid.UUID `json:"sellerId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Image    string    `json:"image"`
}

// AuthOutput returns the authenticated seller plus a freshly signed session token.
// Signup and login produce the same shape.
type AuthOutput struct {
	Seller *entity.Seller
	Token  string
}

// SellerUsecase defines the interface for seller account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type SellerUsecase interface {
	// ListSellers returns all sellers with the password hash excluded.
	ListSellers(ctx context.Context) ([]*SellerView, error)

	// Signup registers a new seller and issues a session token.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// DeleteSeller removes a seller and, cascading, its products and courses.
	DeleteSeller(ctx context.Context, sellerID uuid.UUID) error
}
