// Package repomanager constructs repositories over a shared database
// handle (or transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/webmanager/internal/dbx"
	"github.com/dmitrijs2005/webmanager/internal/server/repositories/employees"
	"github.com/dmitrijs2005/webmanager/internal/server/repositories/hosting"
)

type RepositoryManager interface {
	Employees(db dbx.DBTX) employees.Repository
	Hosting(db dbx.DBTX) hosting.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
