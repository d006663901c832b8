package repository

import (
	"context"

	"github.com/fitstack/trainings-api/internal/model"
)

// ExercisesRepository persists the exercise catalog. Entries are standalone
// and shared across trainings through the trainings_exercises join table.
type ExercisesRepository struct {
	crud[model.Exercise]
}

func NewExercisesRepository(db Querier) *ExercisesRepository {
	return &ExercisesRepository{crud[model.Exercise]{
		db:     db,
		table:  "exercises",
		fields: exerciseFields,
	}}
}

func (r *ExercisesRepository) Create(ctx context.Context, req *model.CreateExercise) (model.Exercise, error) {
	return r.create(ctx, req.Map())
}

func (r *ExercisesRepository) Get(ctx context.Context, id int64) (model.Exercise, error) {
	return r.get(ctx, id)
}

func (r *ExercisesRepository) List(ctx context.Context, filters *model.ExerciseFilters) ([]model.Exercise, error) {
	return r.list(ctx, filters.Map())
}

func (r *ExercisesRepository) Update(ctx context.Context, id int64, changes map[string]any) (model.Exercise, error) {
	return r.update(ctx, id, changes)
}

func (r *ExercisesRepository) Delete(ctx context.Context, id int64) (model.Exercise, error) {
	return r.delete(ctx, id)
}
