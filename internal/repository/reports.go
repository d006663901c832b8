package repository

import (
	"context"

	"github.com/fitstack/trainings-api/internal/model"
)

// ReportsRepository persists generated user reports.
type ReportsRepository struct {
	crud[model.Report]
}

func NewReportsRepository(db Querier) *ReportsRepository {
	return &ReportsRepository{crud[model.Report]{
		db:     db,
		table:  "simple_report",
		fields: reportFields,
	}}
}

func (r *ReportsRepository) Create(ctx context.Context, req *model.CreateReport) (model.Report, error) {
	return r.create(ctx, req.Map())
}

func (r *ReportsRepository) Get(ctx context.Context, id int64) (model.Report, error) {
	return r.get(ctx, id)
}

func (r *ReportsRepository) List(ctx context.Context) ([]model.Report, error) {
	return r.list(ctx, nil)
}

func (r *ReportsRepository) Delete(ctx context.Context, id int64) (model.Report, error) {
	return r.delete(ctx, id)
}
