// Package http exposes the account lifecycle over a JSON REST API built on
// gin. Handlers translate service errors into HTTP status codes and keep
// response messages generic where account enumeration is a concern.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpetrovs/cinepass/internal/common"
	"github.com/mpetrovs/cinepass/internal/server/models"
	"github.com/mpetrovs/cinepass/internal/server/services"
)

// AccountService is the slice of the service layer the handlers need.
type AccountService interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Activate(ctx context.Context, email string, token string) error
	Login(ctx context.Context, email string, password string) (*services.TokenPair, error)
	RefreshAccess(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, email string, token string, newPassword string) error
}

// AccountHandler owns the /accounts route group.
type AccountHandler struct {
	accounts AccountService
}

func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new inactive account.
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid registration request."})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusConflict, errorResponse{
				Detail: fmt.Sprintf("A user with this email %s already exists.", req.Email),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred during user creation."})
		return
	}

	c.JSON(http.StatusCreated, registerResponse{ID: user.ID, Email: user.Email})
}

// Activate flips an account to active using its single-use token.
func (h *AccountHandler) Activate(c *gin.Context) {
	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid activation request."})
		return
	}

	err := h.accounts.Activate(c.Request.Context(), req.Email, req.Token)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, messageResponse{Message: "User account activated successfully."})
	case errors.Is(err, common.ErrorAlreadyActivated):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "User account is already active."})
	case errors.Is(err, common.ErrorInvalidOrExpiredToken):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid or expired activation token."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while activating the account."})
	}
}

// Login exchanges credentials for a token pair.
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid login request."})
		return
	}

	pair, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, loginResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "bearer",
		})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Detail: "Invalid email or password."})
	case errors.Is(err, common.ErrorNotActivated):
		c.JSON(http.StatusForbidden, errorResponse{Detail: "User account is not activated."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while processing the request."})
	}
}

// Refresh mints a new access token against a persisted refresh token.
func (h *AccountHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid refresh request."})
		return
	}

	accessToken, err := h.accounts.RefreshAccess(c.Request.Context(), req.RefreshToken)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, refreshResponse{AccessToken: accessToken})
	case errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Token has expired."})
	case errors.Is(err, common.ErrRefreshTokenNotFound):
		c.JSON(http.StatusUnauthorized, errorResponse{Detail: "Refresh token not found."})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: "User not found."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while processing the request."})
	}
}

// Logout revokes the presented refresh token.
func (h *AccountHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid logout request."})
		return
	}

	err := h.accounts.Logout(c.Request.Context(), req.RefreshToken)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully."})
	case errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Token has expired."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while processing the request."})
	}
}

// RequestPasswordReset issues a reset token. The response is identical
// whether or not the account exists.
func (h *AccountHandler) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid password reset request."})
		return
	}

	if err := h.accounts.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while processing the request."})
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: "If you are registered, you will receive an email with instructions.",
	})
}

// CompletePasswordReset consumes a reset token and sets the new password.
func (h *AccountHandler) CompletePasswordReset(c *gin.Context) {
	var req passwordResetCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid password reset request."})
		return
	}

	err := h.accounts.CompletePasswordReset(c.Request.Context(), req.Email, req.Token, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, messageResponse{Message: "Password reset successfully."})
	case errors.Is(err, common.ErrorInvalidOrExpiredToken):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "Invalid email or token."})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "An error occurred while resetting the password."})
	}
}
