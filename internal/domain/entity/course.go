package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is an instructional offering owned by a Seller. Like Product it is
// plain catalog data from the account service's point of view.
type Course struct {
	ID          uuid.UUID
	SellerID    uuid.UUID // Owning seller.
	Title       string
	Description string
	Price       float64
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
