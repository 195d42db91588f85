// Command migrate manages the database schema outside of the HTTP server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/riskapi/internal/config"
	"github.com/ferdiebergado/riskapi/internal/db"
	"github.com/ferdiebergado/riskapi/internal/pkg/logging"
	"github.com/spf13/cobra"
)

type schemaMigrator interface {
	Up(ctx context.Context) (int, error)
	Down(ctx context.Context) error
	Status(ctx context.Context) ([]db.MigrationState, error)
	Version(ctx context.Context) (int64, error)
}

type options struct {
	cfgFile string
	envFile string
}

// openFunc connects with the given options. The caller closes the returned io.Closer.
type openFunc func(ctx context.Context, opts *options) (schemaMigrator, io.Closer, error)

func newRootCmd(open openFunc) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the risk type database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "config.json", "path to the JSON config file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "environment file loaded outside production")

	root.AddCommand(
		newUpCmd(open, opts),
		newDownCmd(open, opts),
		newStatusCmd(open, opts),
		newVersionCmd(open, opts),
	)
	return root
}

// openMigrator connects with the server's configuration.
func openMigrator(ctx context.Context, opts *options) (schemaMigrator, io.Closer, error) {
	if os.Getenv("ENV") != "production" {
		if err := env.Load(opts.envFile); err != nil {
			return nil, nil, fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stderr)

	conn, err := db.Connect(ctx, cfg.DB, cfg.Conn)
	if err != nil {
		return nil, nil, err
	}

	migrator, err := db.NewMigrator(conn)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return migrator, conn, nil
}

func main() {
	if err := newRootCmd(openMigrator).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
