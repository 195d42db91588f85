package db_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ferdiebergado/riskapi/internal/config"
	"github.com/ferdiebergado/riskapi/internal/db"
	timex "github.com/ferdiebergado/riskapi/internal/pkg/time"
)

const fakeDriverName = "riskapi_fake"

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return fakeConn{}, nil }

type fakeConn struct{}

func (fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (fakeConn) Close() error                        { return nil }
func (fakeConn) Begin() (driver.Tx, error)           { return fakeTx{}, nil }

func (fakeConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return fakeRows{}, nil
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeRows struct{}

func (fakeRows) Columns() []string         { return []string{} }
func (fakeRows) Close() error              { return nil }
func (fakeRows) Next([]driver.Value) error { return io.EOF }

var registerOnce sync.Once

func registerFakeDriver() {
	registerOnce.Do(func() {
		sql.Register(fakeDriverName, fakeDriver{})
	})
}

func testConn() *config.Conn {
	return &config.Conn{Host: "localhost", Port: 5432, User: "risk", Name: "risks", SSLMode: "disable"}
}

func TestConnect(t *testing.T) {
	t.Parallel()
	registerFakeDriver()

	opts := &config.DB{
		Driver:       fakeDriverName,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		PingTimeout:  timex.Duration{Duration: 0},
	}

	conn, err := db.Connect(context.Background(), opts, testConn())
	if err != nil {
		t.Fatalf("db.Connect() = %v, want: %v", err, nil)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != opts.MaxOpenConns {
		t.Errorf("conn.Stats().MaxOpenConnections = %d, want: %d", got, opts.MaxOpenConns)
	}
}

func TestConnect_UnknownDriver(t *testing.T) {
	t.Parallel()

	opts := &config.DB{Driver: "does-not-exist"}
	if _, err := db.Connect(context.Background(), opts, testConn()); err == nil {
		t.Error("db.Connect() = nil, want: error")
	}
}

func TestExecutorFromContext(t *testing.T) {
	t.Parallel()
	registerFakeDriver()

	conn, err := sql.Open(fakeDriverName, "")
	if err != nil {
		t.Fatalf("sql.Open() = %v, want: %v", err, nil)
	}
	defer conn.Close()

	ctx := context.Background()
	if got := db.ExecutorFromContext(ctx, conn); got != db.Executor(conn) {
		t.Errorf("db.ExecutorFromContext(ctx) = %v, want the connection pool", got)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("conn.BeginTx() = %v, want: %v", err, nil)
	}
	t.Cleanup(func() { _ = tx.Rollback() })

	txCtx := db.NewContextWithTx(ctx, tx)
	if got := db.ExecutorFromContext(txCtx, conn); got != db.Executor(tx) {
		t.Errorf("db.ExecutorFromContext(txCtx) = %v, want the transaction", got)
	}

	if got := db.TxFromContext(ctx); got != nil {
		t.Errorf("db.TxFromContext(ctx) = %v, want: %v", got, nil)
	}
}
