package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/orion/internal/app"
	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/config"
	"github.com/thenoetrevino/orion/internal/database"
	"github.com/thenoetrevino/orion/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	db       *sql.DB
	logs     io.Closer
	ctx      context.Context
	borrowed bool
}

// NewCLI loads the configuration, opens the workspace database and restores
// every store from it
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	logs, err := logging.Init(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath())
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c, err := Open(ctx, cfg, db)
	if err != nil {
		_ = db.Close()
		_ = logs.Close()
		return nil, err
	}
	c.logs = logs
	return c, nil
}

// Open builds a CLI over an already opened database. Closing the CLI closes db.
func Open(ctx context.Context, cfg *config.Config, db *sql.DB) (*CLI, error) {
	application := app.New(cfg, database.NewRepository(db), app.WithLogger(slog.Default()))
	if err := application.Load(ctx); err != nil {
		_ = application.Close()
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
		ctx:    ctx,
	}, nil
}

// Context returns the context the CLI was opened with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close writes pending changes and releases the database. A CLI borrowed from
// a context only flushes; its owner closes it.
func (c *CLI) Close() error {
	if c.borrowed {
		return c.App.Flush(c.ctx)
	}

	err := c.App.Close()
	if c.db != nil {
		err = errors.Join(err, c.db.Close())
	}
	if c.logs != nil {
		err = errors.Join(err, c.logs.Close())
	}
	return err
}
