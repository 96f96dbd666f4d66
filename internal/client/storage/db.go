// Package storage opens the local cache database and wires up the
// repositories backed by it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/tablekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/characters"
	"github.com/dmitrijs2005/tablekeeper/internal/client/repositories/rooms"
)

// Repositories bundles the cache repositories sharing one database.
type Repositories struct {
	Rooms      rooms.Repository
	Characters characters.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the cache database at dsn, brings
// the schema up to date, and returns the repositories.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Rooms:      rooms.NewSQLiteRepository(db),
		Characters: characters.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
