package repomanager

import (
	"context"
	"database/sql"

	"taskdeck/internal/dbx"
	"taskdeck/internal/server/repositories/tasks"
	"taskdeck/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
