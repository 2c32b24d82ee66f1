// Package server initializes and runs the accounts service: it opens the
// database, applies migrations, wires the account service, and starts the
// HTTP API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mpetrovs/cinepass/internal/logging"
	"github.com/mpetrovs/cinepass/internal/server/auth"
	"github.com/mpetrovs/cinepass/internal/server/config"
	serverhttp "github.com/mpetrovs/cinepass/internal/server/http"
	"github.com/mpetrovs/cinepass/internal/server/passwords"
	"github.com/mpetrovs/cinepass/internal/server/repositories/repomanager"
	"github.com/mpetrovs/cinepass/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *services.AccountService
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	tokens := auth.NewManager(c.SecretKeyAccess, c.SecretKeyRefresh,
		c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)

	accounts := services.NewAccountService(db, m, tokens, passwords.NewBcryptHasher(), c)

	return &App{config: c, logger: logger, db: db, accounts: accounts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := serverhttp.NewServer(app.config.EndpointAddrHTTP, app.accounts, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
