package field

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context, riskTypeID int64) ([]Field, error)
	CreateFunc func(ctx context.Context, params CreateParams) (Field, error)
	FindFunc   func(ctx context.Context, id int64) (Field, error)
	UpdateFunc func(ctx context.Context, params UpdateParams) error
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, riskTypeID int64) ([]Field, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, riskTypeID)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (Field, error) {
	if s.CreateFunc == nil {
		return Field{}, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Find(ctx context.Context, id int64) (Field, error) {
	if s.FindFunc == nil {
		return Field{}, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) Update(ctx context.Context, params UpdateParams) error {
	if s.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, params)
}

func (s *StubService) Delete(ctx context.Context, id int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, id)
}

type StubRepo struct {
	ListByRiskTypeFunc func(ctx context.Context, riskTypeID int64) ([]Field, error)
	CreateFunc         func(ctx context.Context, params CreateParams) (Field, error)
	FindFunc           func(ctx context.Context, id int64) (Field, error)
	UpdateFunc         func(ctx context.Context, params UpdateParams) error
	DeleteFunc         func(ctx context.Context, id int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) ListByRiskType(ctx context.Context, riskTypeID int64) ([]Field, error) {
	if r.ListByRiskTypeFunc == nil {
		return nil, errors.New("ListByRiskType() not implemented by stub")
	}
	return r.ListByRiskTypeFunc(ctx, riskTypeID)
}

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (Field, error) {
	if r.CreateFunc == nil {
		return Field{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Find(ctx context.Context, id int64) (Field, error) {
	if r.FindFunc == nil {
		return Field{}, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) Update(ctx context.Context, params UpdateParams) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, params)
}

func (r *StubRepo) Delete(ctx context.Context, id int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, id)
}
