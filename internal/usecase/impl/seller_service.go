// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager    repository.TransactionManager
	sellerRepo   repository.SellerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SellerServiceParams holds dependencies for sellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SellerRepo   repository.SellerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSellerService is the constructor for sellerService. It receives all dependencies as interfaces.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		txManager:    params.TxManager,
		sellerRepo:   params.SellerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSellers returns all sellers projected without their password hashes.
func (srv *sellerService) ListSellers(ctx context.Context) ([]*usecase.SellerView, error) {
	sellers, err := srv.sellerRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch sellers", slog.Any("error", err))

		return nil, domainerrors.ErrFetchSellersFailed.WrapMessage("failed to fetch sellers")
	}

	views := make([]*usecase.SellerView, 0, len(sellers))
	for _, seller := range sellers {
		views = append(views, &usecase.SellerView{
			SellerID: seller.ID,
			Name:     seller.Name,
			Email:    seller.Email,
			Image:    seller.Image,
		})
	}

	return views, nil
}

// Signup orchestrates the complete seller registration process: existence
// check, password hashing, persistence, and token issuance.
func (srv *sellerService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting seller signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	var createdSeller *entity.Seller

	// The existence check and the insert run in one transaction. The unique
	// index on email still backstops the check-then-act window: a concurrent
	// duplicate insert surfaces from Create as the same conflict error.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		_, err := sellerRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// If no error, a seller with this email was found.
			return domainerrors.ErrSellerAlreadyExists.WrapMessage("seller signup failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrSellerNotFound) {
			return errors.Wrap(err, "failed to look up seller by email")
		}

		newSeller := &entity.Seller{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Image:        input.ImagePath,
			ProductList:  []*entity.Product{},
			CourseList:   []*entity.Course{},
		}

		if err := sellerRepo.Create(ctx, newSeller); err != nil {
			return errors.Wrap(err, "failed to create seller during signup")
		}
		createdSeller = newSeller

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Seller signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.IssueSessionToken(createdSeller)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token after signup", slog.Any("sellerID", createdSeller.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage("failed to sign session token during signup")
	}

	srv.log(ctx).Debug("Seller signed up", slog.Any("sellerID", createdSeller.ID))

	return &usecase.AuthOutput{Seller: createdSeller, Token: token}, nil
}

// Login verifies a seller's credentials and issues a session token carrying
// the same identity payload as signup.
func (srv *sellerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting seller login", slog.String("email", input.Email))

	seller, err := srv.sellerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			// An unknown email answers the same way as a bad password.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("seller login failed")
		}
		srv.log(ctx).Error("Failed to look up seller during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up seller by email")
	}

	if !srv.hasher.Check(input.Password, seller.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("seller login failed")
	}

	token, err := srv.tokenService.IssueSessionToken(seller)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token during login", slog.Any("sellerID", seller.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage("failed to sign session token during login")
	}

	srv.log(ctx).Debug("Seller logged in", slog.Any("sellerID", seller.ID))

	return &usecase.AuthOutput{Seller: seller, Token: token}, nil
}

// DeleteSeller removes a seller and cascades to its products and courses in
// a single transaction, so a failed cascade never leaves a half-deleted account.
func (srv *sellerService) DeleteSeller(ctx context.Context, sellerID uuid.UUID) error {
	srv.log(ctx).Info("Deleting seller", slog.Any("sellerID", sellerID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.SellerRepo()

		if _, err := sellerRepo.FindByID(ctx, sellerID); err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound.WrapMessage("seller deletion failed")
			}

			return errors.Wrap(err, "failed to find seller for deletion")
		}

		if err := repoFactory.ProductRepo().DeleteBySellerID(ctx, sellerID); err != nil {
			return errors.Wrap(err, "failed to delete seller products")
		}
		if err := repoFactory.CourseRepo().DeleteBySellerID(ctx, sellerID); err != nil {
			return errors.Wrap(err, "failed to delete seller courses")
		}

		if err := sellerRepo.Delete(ctx, sellerID); err != nil {
			return errors.Wrap(err, "failed to delete seller")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Seller deletion failed", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Seller deleted", slog.Any("sellerID", sellerID))

	return nil
}
