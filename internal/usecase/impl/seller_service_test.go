package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service      usecase.SellerUsecase
	txManager    *mockRepo.MockTransactionManager
	sellerRepo   *mockRepo.MockSellerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sellerRepo := mockRepo.NewMockSellerRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSellerService(SellerServiceParams{
		TxManager:    txManager,
		SellerRepo:   sellerRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return sellerServiceFixtures{
		service:      service,
		txManager:    txManager,
		sellerRepo:   sellerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestSellerService_ListSellers_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellers := []*entity.Seller{
		{
			ID:           uuid.New(),
			Name:         "Max Schwarz",
			Email:        "max@test.com",
			PasswordHash: "$2a$12$secret",
			Image:        "uploads/images/max.png",
		},
		{
			ID:           uuid.New(),
			Name:         "Manu Lorenz",
			Email:        "manu@test.com",
			PasswordHash: "$2a$12$another",
		},
	}

	fx.sellerRepo.On("FindAll", ctx).Return(sellers, nil)

	views, err := fx.service.ListSellers(ctx)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, sellers[0].ID, views[0].SellerID)
	assert.Equal(t, "Max Schwarz", views[0].Name)
	assert.Equal(t, "max@test.com", views[0].Email)
	assert.Equal(t, "uploads/images/max.png", views[0].Image)
	assert.Equal(t, sellers[1].ID, views[1].SellerID)
}

func TestSellerService_ListSellers_RepositoryError(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	fx.sellerRepo.On("FindAll", ctx).Return(nil, errors.New("connection refused"))

	views, err := fx.service.ListSellers(ctx)

	assert.Error(t, err)
	assert.Nil(t, views)
	assert.True(t, errors.Is(err, domainerrors.ErrFetchSellersFailed))
}

func TestSellerService_Signup_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:      "Max Schwarz",
		Email:     "max@test.com",
		Password:  "testers",
		ImagePath: "uploads/images/max.png",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)

			mockSellerRepo.On("FindByEmail", ctx, input.Email).
				Return(nil, repository.ErrSellerNotFound)

			mockSellerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Seller")).
				Run(func(args mock.Arguments) {
					seller := args.Get(1).(*entity.Seller)
					seller.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.On("IssueSessionToken", mock.AnythingOfType("*entity.Seller")).
		Return("signed.session.token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Seller.Email)
	assert.Equal(t, "hashed_password", output.Seller.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.Seller.ID)
	assert.Equal(t, "signed.session.token", output.Token)
}

func TestSellerService_Signup_EmailAlreadyExists(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Max Schwarz",
		Email:    "max@test.com",
		Password: "testers",
	}

	existing := &entity.Seller{
		ID:    uuid.New(),
		Email: input.Email,
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)
			mockSellerRepo.On("FindByEmail", ctx, input.Email).Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrSellerAlreadyExists.WrapMessage("seller signup failed"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerAlreadyExists))
}

func TestSellerService_Signup_HashFailure(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Max Schwarz",
		Email:    "max@test.com",
		Password: "testers",
	}

	fx.hasher.On("Hash", input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestSellerService_Signup_TokenSigningFailure(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Max Schwarz",
		Email:    "max@test.com",
		Password: "testers",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)
			mockSellerRepo.On("FindByEmail", ctx, input.Email).
				Return(nil, repository.ErrSellerNotFound)
			mockSellerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Seller")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.On("IssueSessionToken", mock.AnythingOfType("*entity.Seller")).
		Return("", errors.New("signing key unavailable"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSigningFailed))
}

func TestSellerService_Login_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "max@test.com",
		Password: "testers",
	}

	seller := &entity.Seller{
		ID:           uuid.New(),
		Name:         "Max Schwarz",
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(seller, nil)
	fx.hasher.On("Check", input.Password, seller.PasswordHash).Return(true)
	fx.tokenService.On("IssueSessionToken", seller).Return("signed.session.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, seller.ID, output.Seller.ID)
	assert.Equal(t, "signed.session.token", output.Token)
}

func TestSellerService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@test.com",
		Password: "testers",
	}

	fx.sellerRepo.On("FindByEmail", ctx, input.Email).
		Return(nil, repository.ErrSellerNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenService.AssertNotCalled(t, "IssueSessionToken", mock.Anything)
}

func TestSellerService_Login_PasswordMismatch(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "max@test.com",
		Password: "wrong",
	}

	seller := &entity.Seller{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.sellerRepo.On("FindByEmail", ctx, input.Email).Return(seller, nil)
	fx.hasher.On("Check", input.Password, seller.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenService.AssertNotCalled(t, "IssueSessionToken", mock.Anything)
}

func TestSellerService_DeleteSeller_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCourseRepo := mockRepo.NewMockCourseRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)
			mockFactory.On("ProductRepo").Return(mockProductRepo)
			mockFactory.On("CourseRepo").Return(mockCourseRepo)

			mockSellerRepo.On("FindByID", ctx, sellerID).
				Return(&entity.Seller{ID: sellerID}, nil)
			mockProductRepo.On("DeleteBySellerID", ctx, sellerID).Return(nil)
			mockCourseRepo.On("DeleteBySellerID", ctx, sellerID).Return(nil)
			mockSellerRepo.On("Delete", ctx, sellerID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteSeller(ctx, sellerID)

	require.NoError(t, err)
}

func TestSellerService_DeleteSeller_NotFound(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)
			mockSellerRepo.On("FindByID", ctx, sellerID).
				Return(nil, repository.ErrSellerNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrSellerNotFound.WrapMessage("seller deletion failed"))

	err := fx.service.DeleteSeller(ctx, sellerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}

func TestSellerService_DeleteSeller_CascadeFailureAborts(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	cascadeErr := errors.New("products table unavailable")

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)

			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSellerRepo := mockRepo.NewMockSellerRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.On("SellerRepo").Return(mockSellerRepo)
			mockFactory.On("ProductRepo").Return(mockProductRepo)

			mockSellerRepo.On("FindByID", ctx, sellerID).
				Return(&entity.Seller{ID: sellerID}, nil)
			mockProductRepo.On("DeleteBySellerID", ctx, sellerID).Return(cascadeErr)

			err := fn(mockFactory)
			assert.Error(t, err)

			// The seller row itself must stay untouched when the cascade fails.
			mockSellerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		}).
		Return(errors.Wrap(cascadeErr, "failed to delete seller products"))

	err := fx.service.DeleteSeller(ctx, sellerID)

	assert.Error(t, err)
}
