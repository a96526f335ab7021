package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. SellerID references sellers.id.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SellerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID   string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(50);not null;check:category IN ('Category1','Category2','Category3')"`
	Image       string    `gorm:"type:varchar(512);not null"`
	Stock       int       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ratings []RatingModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RatingModel mirrors the 'product_ratings' table, one row per rating entry.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating    float64   `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "product_ratings"
}
