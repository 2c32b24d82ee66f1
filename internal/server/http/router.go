package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mpetrovs/cinepass/internal/logging"
)

// NewRouter wires gin routes and middleware for the accounts API.
func NewRouter(accounts AccountService, log logging.Logger) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))

	h := NewAccountHandler(accounts)

	api := r.Group("/api/v1")
	{
		accountsGroup := api.Group("/accounts")
		{
			accountsGroup.POST("/register", h.Register)
			accountsGroup.POST("/activate", h.Activate)
			accountsGroup.POST("/login", h.Login)
			accountsGroup.POST("/refresh", h.Refresh)
			accountsGroup.POST("/logout", h.Logout)
			accountsGroup.POST("/password-reset/request", h.RequestPasswordReset)
			accountsGroup.POST("/reset-password/complete", h.CompletePasswordReset)
		}
	}

	return r, nil
}
