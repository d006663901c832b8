package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// TrainingsHandler serves training program endpoints, including the
// composite create-with-exercises operation.
type TrainingsHandler struct {
	Handler
	trainings *repository.TrainingsRepository
}

func NewTrainingsHandler(s *server.Server, trainings *repository.TrainingsRepository) *TrainingsHandler {
	return &TrainingsHandler{
		Handler:   NewHandler(s),
		trainings: trainings,
	}
}

func (h *TrainingsHandler) Create(c echo.Context, req *model.CreateTraining) (model.Training, error) {
	return h.trainings.Create(c.Request().Context(), req)
}

// CreateWithExercises creates a training and attaches the given exercises
// in order, in one transaction.
func (h *TrainingsHandler) CreateWithExercises(c echo.Context, req *model.CreateTrainingWithExercises) (model.TrainingWithExercises, error) {
	return h.trainings.CreateWithExercises(c.Request().Context(), req)
}

func (h *TrainingsHandler) Get(c echo.Context, _ *Empty) (model.Training, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Training{}, err
	}
	return h.trainings.Get(c.Request().Context(), id)
}

// GetWithExercises returns a training together with its ordered exercise ids.
func (h *TrainingsHandler) GetWithExercises(c echo.Context, _ *Empty) (model.TrainingWithExercises, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.TrainingWithExercises{}, err
	}
	return h.trainings.GetWithExercises(c.Request().Context(), id)
}

func (h *TrainingsHandler) List(c echo.Context, filters *model.TrainingFilters) ([]model.Training, error) {
	return h.trainings.List(c.Request().Context(), filters)
}

func (h *TrainingsHandler) Update(c echo.Context, req *model.PatchTraining) (model.Training, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Training{}, err
	}
	return h.trainings.Update(c.Request().Context(), id, req.Map())
}

func (h *TrainingsHandler) Delete(c echo.Context, _ *Empty) (model.Training, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Training{}, err
	}
	return h.trainings.Delete(c.Request().Context(), id)
}
