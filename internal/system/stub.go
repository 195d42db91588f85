package system

import (
	"context"
	"errors"
)

type StubMigrator struct {
	UpFunc func(ctx context.Context) (int, error)
}

var _ Migrator = (*StubMigrator)(nil)

func (m *StubMigrator) Up(ctx context.Context) (int, error) {
	if m.UpFunc == nil {
		return 0, errors.New("Up() not implemented by stub")
	}
	return m.UpFunc(ctx)
}

type StubPinger struct {
	PingFunc func(ctx context.Context) error
}

var _ Pinger = (*StubPinger)(nil)

func (p *StubPinger) PingContext(ctx context.Context) error {
	if p.PingFunc == nil {
		return nil
	}
	return p.PingFunc(ctx)
}
