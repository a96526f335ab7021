package repository

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCourseRepository is a testify mock for repository.CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

// NewMockCourseRepository creates a mock wired to the test's lifecycle.
func NewMockCourseRepository(t *testing.T) *MockCourseRepository {
	m := &MockCourseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCourseRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Course, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepository) DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error {
	args := m.Called(ctx, sellerID)

	return args.Error(0)
}
