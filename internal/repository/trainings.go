package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/sqlerr"
)

// TrainingsRepository persists training sessions. It holds the pool (not
// just a Querier) because creating a training together with its exercise
// associations runs in a transaction.
type TrainingsRepository struct {
	crud[model.Training]
	pool *pgxpool.Pool
}

func NewTrainingsRepository(pool *pgxpool.Pool) *TrainingsRepository {
	return &TrainingsRepository{
		crud: crud[model.Training]{
			db:     pool,
			table:  "trainings",
			fields: trainingFields,
		},
		pool: pool,
	}
}

func (r *TrainingsRepository) Create(ctx context.Context, req *model.CreateTraining) (model.Training, error) {
	return r.create(ctx, req.Map())
}

func (r *TrainingsRepository) Get(ctx context.Context, id int64) (model.Training, error) {
	return r.get(ctx, id)
}

func (r *TrainingsRepository) List(ctx context.Context, filters *model.TrainingFilters) ([]model.Training, error) {
	return r.list(ctx, filters.Map())
}

func (r *TrainingsRepository) Update(ctx context.Context, id int64, changes map[string]any) (model.Training, error) {
	return r.update(ctx, id, changes)
}

func (r *TrainingsRepository) Delete(ctx context.Context, id int64) (model.Training, error) {
	return r.delete(ctx, id)
}

// CreateWithExercises inserts a training and its exercise associations in
// one transaction. order_in_training follows the input slice position;
// sets, reps and rest time take their schema defaults. Any failure rolls
// the whole creation back.
func (r *TrainingsRepository) CreateWithExercises(ctx context.Context, req *model.CreateTrainingWithExercises) (model.TrainingWithExercises, error) {
	var zero model.TrainingWithExercises

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return zero, sqlerr.HandleError(err)
	}
	defer tx.Rollback(ctx)

	keys, values, placeholders, err := r.fields.Decompose(req.CreateTraining.Map())
	if err != nil {
		return zero, err
	}
	insert := fmt.Sprintf(
		"INSERT INTO trainings (%s) VALUES (%s) RETURNING %s",
		strings.Join(keys, ", "), strings.Join(placeholders, ", "), r.fields.Projection(),
	)
	training, err := fetchOne[model.Training](ctx, tx, insert, values...)
	if err != nil {
		return zero, err
	}

	batch := &pgx.Batch{}
	for i, exerciseID := range req.ExerciseIDs {
		batch.Queue(
			"INSERT INTO trainings_exercises (training_id, exercise_id, order_in_training) VALUES ($1, $2, $3)",
			training.ID, exerciseID, i+1,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range req.ExerciseIDs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return zero, sqlerr.HandleError(err)
		}
	}
	if err := results.Close(); err != nil {
		return zero, sqlerr.HandleError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, sqlerr.HandleError(err)
	}

	return model.TrainingWithExercises{
		Training:    training,
		ExerciseIDs: req.ExerciseIDs,
	}, nil
}

// GetWithExercises returns a training with its ordered exercise ids.
func (r *TrainingsRepository) GetWithExercises(ctx context.Context, id int64) (model.TrainingWithExercises, error) {
	training, err := r.get(ctx, id)
	if err != nil {
		return model.TrainingWithExercises{}, err
	}

	exerciseIDs, err := r.ExerciseIDs(ctx, id)
	if err != nil {
		return model.TrainingWithExercises{}, err
	}

	return model.TrainingWithExercises{
		Training:    training,
		ExerciseIDs: exerciseIDs,
	}, nil
}

// ExerciseIDs lists the training's exercise ids ordered by their position.
func (r *TrainingsRepository) ExerciseIDs(ctx context.Context, trainingID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT exercise_id FROM trainings_exercises WHERE training_id = $1 ORDER BY order_in_training",
		trainingID,
	)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
