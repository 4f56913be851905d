package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fernandezvara/dbkit"

	"github.com/fernandezvara/grantkit"
)

func main() {
	Execute()
}

// newLogger builds the process logger honoring --verbose/--quiet.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose > 0:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newService wires a Service from the effective configuration. The
// returned cleanup closes the database connection when one was opened.
func newService(cfg *Config, logger *slog.Logger) (*grantkit.Service, func(), error) {
	store := grantkit.NewDirStore(cfg.Artifacts)

	if cfg.DatabaseURL == "" {
		return grantkit.NewService(store, logger), func() {}, nil
	}

	db, err := dbkit.New(dbkit.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	service := grantkit.NewService(store, logger, grantkit.WithDatabase(db))
	return service, func() { db.Close() }, nil
}
