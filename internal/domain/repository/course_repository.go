package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseRepository defines the persistence operations the account service
// needs for courses. Like ProductRepository, it exists for the deletion
// cascade, not for catalog management.
type CourseRepository interface {
	// FindBySellerID returns all courses owned by the given seller.
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Course, error)

	// DeleteBySellerID removes every course owned by the given seller.
	DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error
}
