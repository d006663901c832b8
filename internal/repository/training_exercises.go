package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
)

// TrainingExercisesRepository persists the training/exercise join rows.
// The table is keyed by (training_id, exercise_id) rather than a surrogate
// id, so it does not embed the generic crud core.
type TrainingExercisesRepository struct {
	db     Querier
	fields FieldSet
}

func NewTrainingExercisesRepository(db Querier) *TrainingExercisesRepository {
	return &TrainingExercisesRepository{
		db:     db,
		fields: trainingExerciseFields,
	}
}

func (r *TrainingExercisesRepository) Create(ctx context.Context, req *model.CreateTrainingExercise) (model.TrainingExercise, error) {
	keys, values, placeholders, err := r.fields.Decompose(req.Map())
	if err != nil {
		return model.TrainingExercise{}, err
	}

	query := fmt.Sprintf(
		"INSERT INTO trainings_exercises (%s) VALUES (%s) RETURNING %s",
		strings.Join(keys, ", "), strings.Join(placeholders, ", "), r.fields.Projection(),
	)

	row, err := fetchOne[model.TrainingExercise](ctx, r.db, query, values...)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.TrainingExercise{}, errs.NewCreateFailedError("failed to create trainings_exercises record")
		}
		return model.TrainingExercise{}, err
	}
	return row, nil
}

func (r *TrainingExercisesRepository) Get(ctx context.Context, trainingID, exerciseID int64) (model.TrainingExercise, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM trainings_exercises WHERE training_id = $1 AND exercise_id = $2",
		r.fields.Projection(),
	)
	return fetchOne[model.TrainingExercise](ctx, r.db, query, trainingID, exerciseID)
}

func (r *TrainingExercisesRepository) List(ctx context.Context, filters *model.TrainingExerciseFilters) ([]model.TrainingExercise, error) {
	query := fmt.Sprintf("SELECT %s FROM trainings_exercises", r.fields.Projection())

	var values []any
	if m := filters.Map(); len(m) > 0 {
		keys, vals, _, err := r.fields.Decompose(m)
		if err != nil {
			return nil, err
		}
		query += " WHERE " + WhereClause(keys, 1)
		values = vals
	}
	query += " ORDER BY training_id, order_in_training"

	return fetchAll[model.TrainingExercise](ctx, r.db, query, values...)
}

func (r *TrainingExercisesRepository) Update(ctx context.Context, trainingID, exerciseID int64, changes map[string]any) (model.TrainingExercise, error) {
	keys, values, _, err := r.fields.Decompose(changes)
	if err != nil {
		return model.TrainingExercise{}, err
	}

	query := fmt.Sprintf(
		"UPDATE trainings_exercises SET %s WHERE training_id = $%d AND exercise_id = $%d RETURNING %s",
		SetClause(keys), len(keys)+1, len(keys)+2, r.fields.Projection(),
	)
	values = append(values, trainingID, exerciseID)

	return fetchOne[model.TrainingExercise](ctx, r.db, query, values...)
}

func (r *TrainingExercisesRepository) Delete(ctx context.Context, trainingID, exerciseID int64) (model.TrainingExercise, error) {
	query := fmt.Sprintf(
		"DELETE FROM trainings_exercises WHERE training_id = $1 AND exercise_id = $2 RETURNING %s",
		r.fields.Projection(),
	)
	return fetchOne[model.TrainingExercise](ctx, r.db, query, trainingID, exerciseID)
}
