package model

// TrainingExercise is the join row fixing an exercise's position and load
// within one training. Keyed by (training_id, exercise_id).
type TrainingExercise struct {
	TrainingID      int64    `db:"training_id" json:"training_id"`
	ExerciseID      int64    `db:"exercise_id" json:"exercise_id"`
	OrderInTraining int      `db:"order_in_training" json:"order_in_training"`
	Sets            int      `db:"sets" json:"sets"`
	Reps            int      `db:"reps" json:"reps"`
	RestTimeSec     int      `db:"rest_time_sec" json:"rest_time_sec"`
	ExtraWeight     *float64 `db:"extra_weight" json:"extra_weight"`
}

// CheckRecord is a no-op: the join row carries no enum columns. It exists so
// the row participates in the shared scan pipeline like every other entity.
func (TrainingExercise) CheckRecord() error { return nil }

// CreateTrainingExercise is the association creation payload.
type CreateTrainingExercise struct {
	TrainingID      int64    `json:"training_id" validate:"required,gt=0"`
	ExerciseID      int64    `json:"exercise_id" validate:"required,gt=0"`
	OrderInTraining int      `json:"order_in_training" validate:"required,gt=0"`
	Sets            int      `json:"sets" validate:"omitempty,gt=0"`
	Reps            int      `json:"reps" validate:"omitempty,gt=0"`
	RestTimeSec     int      `json:"rest_time_sec" validate:"omitempty,gte=0"`
	ExtraWeight     *float64 `json:"extra_weight" validate:"omitempty,gt=0"`
}

func (r *CreateTrainingExercise) Validate() error { return validate.Struct(r) }

func (r *CreateTrainingExercise) Map() map[string]any {
	sets := r.Sets
	if sets == 0 {
		sets = 3
	}
	reps := r.Reps
	if reps == 0 {
		reps = 10
	}
	rest := r.RestTimeSec
	if rest == 0 {
		rest = 60
	}
	m := map[string]any{
		"training_id":       r.TrainingID,
		"exercise_id":       r.ExerciseID,
		"order_in_training": r.OrderInTraining,
		"sets":              sets,
		"reps":              reps,
		"rest_time_sec":     rest,
	}
	if r.ExtraWeight != nil {
		m["extra_weight"] = *r.ExtraWeight
	}
	return m
}

// PatchTrainingExercise is the partial-update payload for an association.
type PatchTrainingExercise struct {
	OrderInTraining *int     `json:"order_in_training" validate:"omitempty,gt=0"`
	Sets            *int     `json:"sets" validate:"omitempty,gt=0"`
	Reps            *int     `json:"reps" validate:"omitempty,gt=0"`
	RestTimeSec     *int     `json:"rest_time_sec" validate:"omitempty,gte=0"`
	ExtraWeight     *float64 `json:"extra_weight" validate:"omitempty,gt=0"`
}

func (r *PatchTrainingExercise) Validate() error { return validate.Struct(r) }

func (r *PatchTrainingExercise) Map() map[string]any {
	m := map[string]any{}
	if r.OrderInTraining != nil {
		m["order_in_training"] = *r.OrderInTraining
	}
	if r.Sets != nil {
		m["sets"] = *r.Sets
	}
	if r.Reps != nil {
		m["reps"] = *r.Reps
	}
	if r.RestTimeSec != nil {
		m["rest_time_sec"] = *r.RestTimeSec
	}
	if r.ExtraWeight != nil {
		m["extra_weight"] = *r.ExtraWeight
	}
	return m
}

// TrainingExerciseFilters narrows an association listing.
type TrainingExerciseFilters struct {
	TrainingID *int64 `query:"training_id" validate:"omitempty,gt=0"`
	ExerciseID *int64 `query:"exercise_id" validate:"omitempty,gt=0"`
}

func (r *TrainingExerciseFilters) Validate() error { return validate.Struct(r) }

func (r *TrainingExerciseFilters) Map() map[string]any {
	m := map[string]any{}
	if r.TrainingID != nil {
		m["training_id"] = *r.TrainingID
	}
	if r.ExerciseID != nil {
		m["exercise_id"] = *r.ExerciseID
	}
	return m
}
