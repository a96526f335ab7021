// Package repository contains test doubles for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerRepository is a testify mock for repository.SellerRepository.
type MockSellerRepository struct {
	mock.Mock
}

// NewMockSellerRepository creates a mock wired to the test's lifecycle.
func NewMockSellerRepository(t *testing.T) *MockSellerRepository {
	m := &MockSellerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindAll(ctx context.Context) ([]*entity.Seller, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Seller), args.Error(1)
}

func (m *MockSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	args := m.Called(ctx, seller)

	return args.Error(0)
}

func (m *MockSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
