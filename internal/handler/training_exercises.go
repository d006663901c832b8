package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// TrainingExercisesHandler serves the training-to-exercise link endpoints.
// Links are addressed by the (training_id, exercise_id) pair.
type TrainingExercisesHandler struct {
	Handler
	links *repository.TrainingExercisesRepository
}

func NewTrainingExercisesHandler(s *server.Server, links *repository.TrainingExercisesRepository) *TrainingExercisesHandler {
	return &TrainingExercisesHandler{
		Handler: NewHandler(s),
		links:   links,
	}
}

func (h *TrainingExercisesHandler) Create(c echo.Context, req *model.CreateTrainingExercise) (model.TrainingExercise, error) {
	return h.links.Create(c.Request().Context(), req)
}

func (h *TrainingExercisesHandler) Get(c echo.Context, _ *Empty) (model.TrainingExercise, error) {
	trainingID, exerciseID, err := linkIDs(c)
	if err != nil {
		return model.TrainingExercise{}, err
	}
	return h.links.Get(c.Request().Context(), trainingID, exerciseID)
}

func (h *TrainingExercisesHandler) List(c echo.Context, filters *model.TrainingExerciseFilters) ([]model.TrainingExercise, error) {
	return h.links.List(c.Request().Context(), filters)
}

func (h *TrainingExercisesHandler) Update(c echo.Context, req *model.PatchTrainingExercise) (model.TrainingExercise, error) {
	trainingID, exerciseID, err := linkIDs(c)
	if err != nil {
		return model.TrainingExercise{}, err
	}
	return h.links.Update(c.Request().Context(), trainingID, exerciseID, req.Map())
}

func (h *TrainingExercisesHandler) Delete(c echo.Context, _ *Empty) (model.TrainingExercise, error) {
	trainingID, exerciseID, err := linkIDs(c)
	if err != nil {
		return model.TrainingExercise{}, err
	}
	return h.links.Delete(c.Request().Context(), trainingID, exerciseID)
}

func linkIDs(c echo.Context) (int64, int64, error) {
	trainingID, err := pathID(c, "training_id")
	if err != nil {
		return 0, 0, err
	}
	exerciseID, err := pathID(c, "exercise_id")
	if err != nil {
		return 0, 0, err
	}
	return trainingID, exerciseID, nil
}
