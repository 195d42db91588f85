package field

import (
	"context"

	"github.com/ferdiebergado/riskapi/internal/model"
)

// Repository is the storage behind the field service.
type Repository interface {
	ListByRiskType(ctx context.Context, riskTypeID int64) ([]Field, error)
	Create(ctx context.Context, params CreateParams) (Field, error)
	Find(ctx context.Context, id int64) (Field, error)
	Update(ctx context.Context, params UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, riskTypeID int64) ([]Field, error) {
	return s.repo.ListByRiskType(ctx, riskTypeID)
}

func (s *service) Create(ctx context.Context, params CreateParams) (Field, error) {
	if params.Metadata == nil {
		params.Metadata = model.EmptyMetadata
	}
	return s.repo.Create(ctx, params)
}

func (s *service) Find(ctx context.Context, id int64) (Field, error) {
	return s.repo.Find(ctx, id)
}

func (s *service) Update(ctx context.Context, params UpdateParams) error {
	if params.Metadata == nil {
		params.Metadata = model.EmptyMetadata
	}
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
