// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed classification of a product.
type Category string

const (
	Category1 Category = "Category1"
	Category2 Category = "Category2"
	Category3 Category = "Category3"
)

// IsValid checks if the Category is one of the fixed values.
func (c Category) IsValid() bool {
	switch c {
	case Category1, Category2, Category3:
		return true
	default:
		return false
	}
}

// Product is a catalog item owned by a Seller. The account service never
// mutates products except when a seller deletion cascades to them.
type Product struct {
	ID          uuid.UUID
	SellerID    uuid.UUID // Owning seller.
	ProductID   string    // External product identifier, unique.
	Title       string
	Description string
	Price       float64
	Category    Category
	Image       string
	Stock       int
	Ratings     []Rating // Ordered sequence of rating entries.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Rating is a single numeric rating entry attached to a product.
type Rating struct {
	ID     uuid.UUID
	Rating float64
}
