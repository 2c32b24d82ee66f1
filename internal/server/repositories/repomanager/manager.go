package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrovs/cinepass/internal/dbx"
	"github.com/mpetrovs/cinepass/internal/server/repositories/activationtokens"
	"github.com/mpetrovs/cinepass/internal/server/repositories/refreshtokens"
	"github.com/mpetrovs/cinepass/internal/server/repositories/resettokens"
	"github.com/mpetrovs/cinepass/internal/server/repositories/users"
)

// RepositoryManager vends repository instances bound to a DBTX (either the
// pooled *sql.DB or an open *sql.Tx) and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	ActivationTokens(db dbx.DBTX) activationtokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
