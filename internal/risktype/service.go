package risktype

import (
	"context"
	"encoding/json"

	"github.com/ferdiebergado/riskapi/internal/model"
)

type Repository interface {
	List(ctx context.Context) ([]RiskType, error)
	Create(ctx context.Context, meta json.RawMessage) (RiskType, error)
	Find(ctx context.Context, id int64) (RiskType, error)
	Update(ctx context.Context, id int64, meta json.RawMessage) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]RiskType, error) {
	return s.repo.List(ctx)
}

// Create stores meta, or the empty JSON string when meta is absent.
func (s *service) Create(ctx context.Context, meta json.RawMessage) (RiskType, error) {
	if meta == nil {
		meta = model.EmptyMetadata
	}
	return s.repo.Create(ctx, meta)
}

func (s *service) Find(ctx context.Context, id int64) (RiskType, error) {
	return s.repo.Find(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, meta json.RawMessage) error {
	if meta == nil {
		meta = model.EmptyMetadata
	}
	return s.repo.Update(ctx, id, meta)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
