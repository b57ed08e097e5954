// Package repomanager wires repository constructors to a concrete database
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskify/internal/dbx"
	"github.com/dmitrijs2005/taskify/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskify/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
