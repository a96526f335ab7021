// Package usecase contains test doubles for the application use case interfaces.
package usecase

import (
	"context"
	"testing"

	appusecase "bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSellerUsecase is a testify mock for usecase.SellerUsecase.
type MockSellerUsecase struct {
	mock.Mock
}

// NewMockSellerUsecase creates a mock wired to the test's lifecycle.
func NewMockSellerUsecase(t *testing.T) *MockSellerUsecase {
	m := &MockSellerUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSellerUsecase) ListSellers(ctx context.Context) ([]*appusecase.SellerView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*appusecase.SellerView), args.Error(1)
}

func (m *MockSellerUsecase) Signup(ctx context.Context, input *appusecase.SignupInput) (*appusecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*appusecase.AuthOutput), args.Error(1)
}

func (m *MockSellerUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*appusecase.AuthOutput), args.Error(1)
}

func (m *MockSellerUsecase) DeleteSeller(ctx context.Context, sellerID uuid.UUID) error {
	args := m.Called(ctx, sellerID)

	return args.Error(0)
}
