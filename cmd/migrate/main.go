// Command migrate applies the embedded schema migrations and development
// seed to the database named by DATABASE_URL.
//
//	migrate -command up
//	migrate -command seed
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"ncnews/internal/infra/db"
	"ncnews/internal/observability/logging"
)

var commands = []string{
	db.CommandUp,
	db.CommandDown,
	db.CommandStatus,
	db.CommandReset,
	db.CommandVersion,
	db.CommandSeed,
}

func main() {
	command := flag.String("command", db.CommandUp, "one of: "+strings.Join(commands, ", "))
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("error", err))
	}

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	if err := run(*command); err != nil {
		logger.Error("migration failed",
			slog.String("command", *command),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migration finished", slog.String("command", *command))
}

func run(command string) error {
	known := false
	for _, c := range commands {
		known = known || c == command
	}
	if !known {
		return fmt.Errorf("unknown command %q", command)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, db.ConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	return db.Migrate(ctx, database.DB, command)
}
