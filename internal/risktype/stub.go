package risktype

import (
	"context"
	"encoding/json"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context) ([]RiskType, error)
	CreateFunc func(ctx context.Context, meta json.RawMessage) (RiskType, error)
	FindFunc   func(ctx context.Context, id int64) (RiskType, error)
	UpdateFunc func(ctx context.Context, id int64, meta json.RawMessage) error
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]RiskType, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Create(ctx context.Context, meta json.RawMessage) (RiskType, error) {
	if s.CreateFunc == nil {
		return RiskType{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, meta)
}

func (s *StubService) Find(ctx context.Context, id int64) (RiskType, error) {
	if s.FindFunc == nil {
		return RiskType{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) Update(ctx context.Context, id int64, meta json.RawMessage) error {
	if s.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, id, meta)
}

func (s *StubService) Delete(ctx context.Context, id int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context) ([]RiskType, error)
	CreateFunc func(ctx context.Context, meta json.RawMessage) (RiskType, error)
	FindFunc   func(ctx context.Context, id int64) (RiskType, error)
	UpdateFunc func(ctx context.Context, id int64, meta json.RawMessage) error
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]RiskType, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Create(ctx context.Context, meta json.RawMessage) (RiskType, error) {
	if r.CreateFunc == nil {
		return RiskType{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, meta)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (RiskType, error) {
	if r.FindFunc == nil {
		return RiskType{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Update(ctx context.Context, id int64, meta json.RawMessage) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, id, meta)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
