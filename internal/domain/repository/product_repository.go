package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence operations the account service
// needs for products. Catalog management has its own surface and is out of
// scope here; deletion support exists for the seller cascade.
type ProductRepository interface {
	// FindBySellerID returns all products owned by the given seller.
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)

	// DeleteBySellerID removes every product owned by the given seller.
	DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error
}
