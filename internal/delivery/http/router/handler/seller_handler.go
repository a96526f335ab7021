// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/config"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type signupRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Image    string `json:"image" form:"image"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// authResponse is the body returned by both signup and login.
type authResponse struct {
	SellerID uuid.UUID `json:"sellerId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
}

type listSellersResponse struct {
	Sellers []*usecase.SellerView `json:"sellers"`
}

type sessionResponse struct {
	IsLoggedIn bool        `json:"isLoggedIn"`
	UserID     string      `json:"userId,omitempty"`
	Username   string      `json:"username,omitempty"`
	Role       entity.Role `json:"role,omitempty"`
}

// SellerHandler holds dependencies for seller account handlers.
type SellerHandler struct {
	uc       usecase.SellerUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// ListSellers handles the public seller listing request.
func (h *SellerHandler) ListSellers(c echo.Context) error {
	views, err := h.uc.ListSellers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if views == nil {
		views = []*usecase.SellerView{}
	}

	return c.JSON(http.StatusOK, listSellersResponse{Sellers: views})
}

// Signup handles the seller registration request.
func (h *SellerHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		ImagePath: req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.JSON(http.StatusCreated, authResponse{
		SellerID: output.Seller.ID,
		Name:     output.Seller.Name,
		Email:    output.Seller.Email,
	})
}

// Login handles the seller login request. Success answers 201 with the same
// body and cookie shape as signup.
func (h *SellerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.JSON(http.StatusCreated, authResponse{
		SellerID: output.Seller.ID,
		Name:     output.Seller.Name,
		Email:    output.Seller.Email,
	})
}

// DeleteSeller handles the seller deletion request.
func (h *SellerHandler) DeleteSeller(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		// A malformed id cannot name any seller.
		return domainerrors.ErrSellerNotFound.WithDetails("malformed seller id")
	}

	if err := h.uc.DeleteSeller(c.Request().Context(), sellerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Deleted seller.")
}

// Session reports whether the caller holds a valid session cookie. It never
// fails: an absent or invalid cookie simply answers isLoggedIn false.
func (h *SellerHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Cookie.Name)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, sessionResponse{IsLoggedIn: false})
	}

	claims, err := h.tokenSvc.ValidateToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, sessionResponse{IsLoggedIn: false})
	}

	return c.JSON(http.StatusOK, sessionResponse{
		IsLoggedIn: true,
		UserID:     claims.UserID.String(),
		Username:   claims.Username,
		Role:       claims.Role,
	})
}

// Logout clears the session cookie.
func (h *SellerHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)

	return response.Message(c, http.StatusOK, "Logged out.")
}

func (h *SellerHandler) setSessionCookie(c echo.Context, token string) {
	cookie := &http.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl := h.cfg.Auth.SessionTokenTTL; ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
	}

	c.SetCookie(cookie)
}

func (h *SellerHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
