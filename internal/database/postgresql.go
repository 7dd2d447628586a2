package database

import (
	"context"
	"embed"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrDuplicateCode is returned when an insert loses the race on the
// (domain_id, short_code) unique constraint. The constraint, not the
// existence pre-check, is the final arbiter of slug allocation.
var ErrDuplicateCode = errors.New("short code already exists on this domain")

type Database struct {
	db *sqlx.DB
}

func ConnectPostgres(ctx context.Context, url string) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, err
	}

	pg := &Database{db: db}

	if err := pg.RunMigrations(); err != nil {
		return nil, err
	}

	return pg, nil
}

func (db *Database) RunMigrations() error {
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db.db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance(
		"iofs", d,
		"postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	slog.Info("Database migrations applied successfully")
	return nil
}

func (db *Database) Close() error {
	return db.db.Close()
}
