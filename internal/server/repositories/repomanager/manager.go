// Package repomanager hands out repositories bound to a DB handle. Because
// every repository accepts a dbx.DBTX, the same repository code runs against
// the pooled *sql.DB or inside a *sql.Tx, which is how services compose
// multi-statement atomic units.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mzaharov/tenantnotes/internal/dbx"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/identities"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/notes"
	"github.com/mzaharov/tenantnotes/internal/server/repositories/tenants"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Identities(db dbx.DBTX) identities.Repository
	Tenants(db dbx.DBTX) tenants.Repository
	Notes(db dbx.DBTX) notes.Repository
}
