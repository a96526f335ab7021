package repository

import (
	"context"
	"testing"

	"bazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock for repository.TransactionManager.
// Tests that need the transactional function to run should do so from a Run
// callback and configure Return with the error the function produces.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock wired to the test's lifecycle.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock wired to the test's lifecycle.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) SellerRepo() repository.SellerRepository {
	args := m.Called()

	return args.Get(0).(repository.SellerRepository)
}

func (m *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	args := m.Called()

	return args.Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) CourseRepo() repository.CourseRepository {
	args := m.Called()

	return args.Get(0).(repository.CourseRepository)
}
