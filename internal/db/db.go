package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/riskapi/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Connect opens the connection pool described by conn and pings it.
func Connect(ctx context.Context, opts *config.DB, conn *config.Conn) (*sql.DB, error) {
	slog.Info("Connecting to the database...", "host", conn.Host, "db", conn.Name)

	dbConn, err := sql.Open(opts.Driver, conn.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	dbConn.SetMaxOpenConns(opts.MaxOpenConns)
	dbConn.SetMaxIdleConns(opts.MaxIdleConns)
	dbConn.SetConnMaxIdleTime(opts.ConnMaxIdleTime.Duration)
	dbConn.SetConnMaxLifetime(opts.ConnMaxLifetime.Duration)

	pingCtx := ctx
	if opts.PingTimeout.Duration > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.PingTimeout.Duration)
		defer cancel()
	}

	if err := dbConn.PingContext(pingCtx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", conn.Name)

	return dbConn, nil
}

type txCtxKey int

const txKey txCtxKey = iota

func NewContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context.
func TxFromContext(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey).(*sql.Tx); ok {
		return tx
	}
	return nil
}

// ExecutorFromContext returns the transaction carried by ctx, falling back to conn.
//
//nolint:ireturn //Callers only need the Executor methods.
func ExecutorFromContext(ctx context.Context, conn *sql.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}
