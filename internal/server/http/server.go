package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mpetrovs/cinepass/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server runs the accounts API over HTTP and stops when its context is
// cancelled.
type Server struct {
	address  string
	accounts AccountService
	logger   logging.Logger
}

func NewServer(address string, accounts AccountService, l logging.Logger) *Server {
	return &Server{
		address:  address,
		accounts: accounts,
		logger:   l.With("module", "http_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {

	router, err := NewRouter(s.accounts, s.logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    s.address,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
