// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
// It returns the repository as a domain.SellerRepository interface, adhering to dependency inversion.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a single seller by their unique ID, preloading the owned catalog entries.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Ratings").
		Preload("Courses").
		Where("id = ?", id).
		First(&sellerM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toSellerDomain(&sellerM), nil
}

// FindByEmail retrieves a single seller by their email address. Catalog
// entries are not preloaded; the credential path only needs the hash.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&sellerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM), nil
}

// FindAll retrieves every seller record.
func (repo *sellerRepository) FindAll(ctx context.Context) ([]*entity.Seller, error) {
	var sellerModels []model.SellerModel
	if err := repo.db.WithContext(ctx).Find(&sellerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerModels))
	for i := range sellerModels {
		sellers = append(sellers, toSellerDomain(&sellerModels[i]))
	}

	return sellers, nil
}

// Create persists a new seller entity to the database. The unique index on
// email turns concurrent duplicate signups into a conflict error here, even
// when both requests passed the preliminary existence check.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSellerCreationFailed.WrapMessage("missing required seller information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	// Update the seller entity with the generated ID and timestamps
	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Delete removes a seller record by ID.
func (repo *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SellerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller")
	}

	// If no rows were affected, the seller was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for i := range data.Products {
		products = append(products, toProductDomain(&data.Products[i]))
	}

	courses := make([]*entity.Course, 0, len(data.Courses))
	for i := range data.Courses {
		courses = append(courses, toCourseDomain(&data.Courses[i]))
	}

	return &entity.Seller{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Image:        data.Image,
		ProductList:  products,
		CourseList:   courses,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromSellerDomain converts a domain Seller entity to a GORM SellerModel for persistence.
// Catalog entries are persisted through their own repositories, not through the seller.
func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Image:        data.Image,
	}
}
