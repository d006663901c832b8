package model

// Exercise is a catalog entry, standalone and shared across trainings.
type Exercise struct {
	ID                int64        `db:"id" json:"id"`
	Title             string       `db:"title" json:"title"`
	Description       *string      `db:"description" json:"description"`
	MuscleGroup       *MuscleGroup `db:"muscle_group" json:"muscle_group"`
	EquipmentRequired bool         `db:"equipment_required" json:"equipment_required"`
	ComplexityLvl     Complexity   `db:"complexity_lvl" json:"complexity_lvl"`
}

func (e Exercise) CheckRecord() error {
	if e.MuscleGroup != nil && !e.MuscleGroup.Valid() {
		return fieldErr("muscle_group", string(*e.MuscleGroup))
	}
	if !e.ComplexityLvl.Valid() {
		return fieldErr("complexity_lvl", string(e.ComplexityLvl))
	}
	return nil
}

// CreateExercise is the catalog creation payload.
type CreateExercise struct {
	Title             string       `json:"title" validate:"required,max=50"`
	Description       *string      `json:"description"`
	MuscleGroup       *MuscleGroup `json:"muscle_group" validate:"omitempty,oneof=CHEST BACK LEGS ARMS CORE SHOULDERS BUTTOCKS CALVES NECK HIPS FULL_BODY OTHER"`
	EquipmentRequired bool         `json:"equipment_required"`
	ComplexityLvl     Complexity   `json:"complexity_lvl" validate:"omitempty,oneof=BEGINNER NOVICE INTERMEDIATE ADVANCED EXPERT MASTER"`
}

func (r *CreateExercise) Validate() error { return validate.Struct(r) }

func (r *CreateExercise) Map() map[string]any {
	lvl := r.ComplexityLvl
	if lvl == "" {
		lvl = ComplexityBeginner
	}
	m := map[string]any{
		"title":              r.Title,
		"equipment_required": r.EquipmentRequired,
		"complexity_lvl":     lvl,
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	if r.MuscleGroup != nil {
		m["muscle_group"] = *r.MuscleGroup
	}
	return m
}

// PatchExercise is the partial-update payload for a catalog entry.
type PatchExercise struct {
	Title             *string      `json:"title" validate:"omitempty,max=50"`
	Description       *string      `json:"description"`
	MuscleGroup       *MuscleGroup `json:"muscle_group" validate:"omitempty,oneof=CHEST BACK LEGS ARMS CORE SHOULDERS BUTTOCKS CALVES NECK HIPS FULL_BODY OTHER"`
	EquipmentRequired *bool        `json:"equipment_required"`
	ComplexityLvl     *Complexity  `json:"complexity_lvl" validate:"omitempty,oneof=BEGINNER NOVICE INTERMEDIATE ADVANCED EXPERT MASTER"`
}

func (r *PatchExercise) Validate() error { return validate.Struct(r) }

func (r *PatchExercise) Map() map[string]any {
	m := map[string]any{}
	if r.Title != nil {
		m["title"] = *r.Title
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	if r.MuscleGroup != nil {
		m["muscle_group"] = *r.MuscleGroup
	}
	if r.EquipmentRequired != nil {
		m["equipment_required"] = *r.EquipmentRequired
	}
	if r.ComplexityLvl != nil {
		m["complexity_lvl"] = *r.ComplexityLvl
	}
	return m
}

// ExerciseFilters narrows an exercise listing.
type ExerciseFilters struct {
	Title             *string      `query:"title" validate:"omitempty,max=50"`
	MuscleGroup       *MuscleGroup `query:"muscle_group" validate:"omitempty,oneof=CHEST BACK LEGS ARMS CORE SHOULDERS BUTTOCKS CALVES NECK HIPS FULL_BODY OTHER"`
	EquipmentRequired *bool        `query:"equipment_required"`
	ComplexityLvl     *Complexity  `query:"complexity_lvl" validate:"omitempty,oneof=BEGINNER NOVICE INTERMEDIATE ADVANCED EXPERT MASTER"`
}

func (r *ExerciseFilters) Validate() error { return validate.Struct(r) }

func (r *ExerciseFilters) Map() map[string]any {
	m := map[string]any{}
	if r.Title != nil {
		m["title"] = *r.Title
	}
	if r.MuscleGroup != nil {
		m["muscle_group"] = *r.MuscleGroup
	}
	if r.EquipmentRequired != nil {
		m["equipment_required"] = *r.EquipmentRequired
	}
	if r.ComplexityLvl != nil {
		m["complexity_lvl"] = *r.ComplexityLvl
	}
	return m
}
