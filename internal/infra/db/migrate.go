package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql seeds/*.sql
var embedded embed.FS

const (
	migrationsDir      = "migrations"
	seedsDir           = "seeds"
	migrationTableName = "schema_migrations"
)

// Migration commands accepted by Migrate.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandReset   = "reset"
	CommandVersion = "version"
	CommandSeed    = "seed"
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

func (slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}

// Fatalf logs at error level and does not exit; the caller decides.
func (slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}

func configureGoose() error {
	goose.SetBaseFS(embedded)
	goose.SetLogger(slogGooseLogger{})
	goose.SetTableName(migrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// MigrateUp applies every pending schema migration.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	return Migrate(ctx, db, CommandUp)
}

// Migrate runs a goose command against the embedded migrations.
// CommandSeed reloads the development fixture data.
func Migrate(ctx context.Context, db *sql.DB, command string) error {
	if err := configureGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, migrationsDir)
	case CommandDown:
		err = goose.DownContext(ctx, db, migrationsDir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, migrationsDir)
	case CommandReset:
		err = goose.ResetContext(ctx, db, migrationsDir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, migrationsDir)
	case CommandSeed:
		err = goose.UpContext(ctx, db, seedsDir, goose.WithNoVersioning())
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
