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

// courseRepository implements the domain.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// FindBySellerID returns all courses owned by the given seller.
func (repo *courseRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Course, error) {
	var courseModels []model.CourseModel
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Find(&courseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses by seller")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for i := range courseModels {
		courses = append(courses, toCourseDomain(&courseModels[i]))
	}

	return courses, nil
}

// DeleteBySellerID removes every course owned by the given seller.
func (repo *courseRepository) DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Delete(&model.CourseModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete seller courses")
	}

	return nil
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
