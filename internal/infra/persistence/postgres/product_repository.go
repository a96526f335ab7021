package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindBySellerID returns all products owned by the given seller.
func (repo *productRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Ratings").
		Where("seller_id = ?", sellerID).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by seller")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// DeleteBySellerID removes every product owned by the given seller.
// Ratings go with their products via the FK cascade.
func (repo *productRepository) DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Delete(&model.ProductModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete seller products")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	ratings := make([]entity.Rating, 0, len(data.Ratings))
	for _, r := range data.Ratings {
		ratings = append(ratings, entity.Rating{ID: r.ID, Rating: r.Rating})
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		ProductID:   data.ProductID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Image:       data.Image,
		Stock:       data.Stock,
		Ratings:     ratings,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
