package repository

import (
	"context"

	"github.com/fitstack/trainings-api/internal/model"
)

// MembershipsRepository persists membership tiers.
type MembershipsRepository struct {
	crud[model.Membership]
}

func NewMembershipsRepository(db Querier) *MembershipsRepository {
	return &MembershipsRepository{crud[model.Membership]{
		db:     db,
		table:  "memberships",
		fields: membershipFields,
	}}
}

func (r *MembershipsRepository) Create(ctx context.Context, req *model.CreateMembership) (model.Membership, error) {
	return r.create(ctx, req.Map())
}

func (r *MembershipsRepository) Get(ctx context.Context, id int64) (model.Membership, error) {
	return r.get(ctx, id)
}

func (r *MembershipsRepository) List(ctx context.Context, filters *model.MembershipFilters) ([]model.Membership, error) {
	return r.list(ctx, filters.Map())
}

func (r *MembershipsRepository) Update(ctx context.Context, id int64, changes map[string]any) (model.Membership, error) {
	return r.update(ctx, id, changes)
}

func (r *MembershipsRepository) Delete(ctx context.Context, id int64) (model.Membership, error) {
	return r.delete(ctx, id)
}
