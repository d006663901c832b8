package model

import "time"

// Training is a single training session belonging to one client.
type Training struct {
	ID           int64        `db:"id" json:"id"`
	ClientID     int64        `db:"client_id" json:"client_id"`
	TrainingType TrainingType `db:"training_type" json:"training_type"`
	Title        string       `db:"title" json:"title"`
	Intensity    Intensity    `db:"intensity" json:"intensity"`
	DurationMin  int          `db:"duration_min" json:"duration_min"`
	DateOfTrain  *time.Time   `db:"date_of_train" json:"date_of_train"`
	Description  *string      `db:"description" json:"description"`
}

func (t Training) CheckRecord() error {
	if !t.TrainingType.Valid() {
		return fieldErr("training_type", string(t.TrainingType))
	}
	if !t.Intensity.Valid() {
		return fieldErr("intensity", string(t.Intensity))
	}
	return nil
}

// TrainingWithExercises pairs a training with the ordered exercise ids fixed
// by its trainings_exercises rows.
type TrainingWithExercises struct {
	Training
	ExerciseIDs []int64 `json:"exercise_ids"`
}

// CreateTraining is the training creation payload.
type CreateTraining struct {
	ClientID     int64        `json:"client_id" validate:"required,gt=0"`
	TrainingType TrainingType `json:"training_type" validate:"omitempty,oneof=CARDIO STRENGTH FLEXIBILITY BALANCE HIIT YOGA PILATES ENDURANCE CROSSFIT FUNCTIONAL REHABILITATION DANCE SWIMMING OTHER"`
	Title        string       `json:"title" validate:"required,min=1,max=200"`
	Intensity    Intensity    `json:"intensity" validate:"omitempty,oneof=VERY_LOW LOW MEDIUM HIGH VERY_HIGH EXTREME"`
	DurationMin  int          `json:"duration_min" validate:"omitempty,gt=0"`
	DateOfTrain  *time.Time   `json:"date_of_train"`
	Description  *string      `json:"description"`
}

func (r *CreateTraining) Validate() error { return validate.Struct(r) }

func (r *CreateTraining) Map() map[string]any {
	trainType := r.TrainingType
	if trainType == "" {
		trainType = TrainingOther
	}
	intensity := r.Intensity
	if intensity == "" {
		intensity = IntensityVeryLow
	}
	duration := r.DurationMin
	if duration == 0 {
		duration = 45
	}
	m := map[string]any{
		"client_id":     r.ClientID,
		"training_type": trainType,
		"title":         r.Title,
		"intensity":     intensity,
		"duration_min":  duration,
	}
	if r.DateOfTrain != nil {
		m["date_of_train"] = *r.DateOfTrain
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	return m
}

// CreateTrainingWithExercises creates a training and its exercise
// associations in one transaction; exercise order follows slice position.
type CreateTrainingWithExercises struct {
	CreateTraining
	ExerciseIDs []int64 `json:"exercise_ids" validate:"required,min=1,dive,gt=0"`
}

func (r *CreateTrainingWithExercises) Validate() error { return validate.Struct(r) }

// PatchTraining is the partial-update payload for a training.
type PatchTraining struct {
	ClientID     *int64        `json:"client_id" validate:"omitempty,gt=0"`
	TrainingType *TrainingType `json:"training_type" validate:"omitempty,oneof=CARDIO STRENGTH FLEXIBILITY BALANCE HIIT YOGA PILATES ENDURANCE CROSSFIT FUNCTIONAL REHABILITATION DANCE SWIMMING OTHER"`
	Title        *string       `json:"title" validate:"omitempty,min=1,max=200"`
	Intensity    *Intensity    `json:"intensity" validate:"omitempty,oneof=VERY_LOW LOW MEDIUM HIGH VERY_HIGH EXTREME"`
	DurationMin  *int          `json:"duration_min" validate:"omitempty,gt=0"`
	DateOfTrain  *time.Time    `json:"date_of_train"`
	Description  *string       `json:"description"`
}

func (r *PatchTraining) Validate() error { return validate.Struct(r) }

func (r *PatchTraining) Map() map[string]any {
	m := map[string]any{}
	if r.ClientID != nil {
		m["client_id"] = *r.ClientID
	}
	if r.TrainingType != nil {
		m["training_type"] = *r.TrainingType
	}
	if r.Title != nil {
		m["title"] = *r.Title
	}
	if r.Intensity != nil {
		m["intensity"] = *r.Intensity
	}
	if r.DurationMin != nil {
		m["duration_min"] = *r.DurationMin
	}
	if r.DateOfTrain != nil {
		m["date_of_train"] = *r.DateOfTrain
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	return m
}

// TrainingFilters narrows a training listing.
type TrainingFilters struct {
	ClientID     *int64        `query:"client_id" validate:"omitempty,gt=0"`
	TrainingType *TrainingType `query:"training_type" validate:"omitempty,oneof=CARDIO STRENGTH FLEXIBILITY BALANCE HIIT YOGA PILATES ENDURANCE CROSSFIT FUNCTIONAL REHABILITATION DANCE SWIMMING OTHER"`
	Intensity    *Intensity    `query:"intensity" validate:"omitempty,oneof=VERY_LOW LOW MEDIUM HIGH VERY_HIGH EXTREME"`
}

func (r *TrainingFilters) Validate() error { return validate.Struct(r) }

func (r *TrainingFilters) Map() map[string]any {
	m := map[string]any{}
	if r.ClientID != nil {
		m["client_id"] = *r.ClientID
	}
	if r.TrainingType != nil {
		m["training_type"] = *r.TrainingType
	}
	if r.Intensity != nil {
		m["intensity"] = *r.Intensity
	}
	return m
}
