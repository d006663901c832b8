package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// ExercisesHandler serves the exercise catalog endpoints.
type ExercisesHandler struct {
	Handler
	exercises *repository.ExercisesRepository
}

func NewExercisesHandler(s *server.Server, exercises *repository.ExercisesRepository) *ExercisesHandler {
	return &ExercisesHandler{
		Handler:   NewHandler(s),
		exercises: exercises,
	}
}

func (h *ExercisesHandler) Create(c echo.Context, req *model.CreateExercise) (model.Exercise, error) {
	return h.exercises.Create(c.Request().Context(), req)
}

func (h *ExercisesHandler) Get(c echo.Context, _ *Empty) (model.Exercise, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Exercise{}, err
	}
	return h.exercises.Get(c.Request().Context(), id)
}

func (h *ExercisesHandler) List(c echo.Context, filters *model.ExerciseFilters) ([]model.Exercise, error) {
	return h.exercises.List(c.Request().Context(), filters)
}

func (h *ExercisesHandler) Update(c echo.Context, req *model.PatchExercise) (model.Exercise, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Exercise{}, err
	}
	return h.exercises.Update(c.Request().Context(), id, req.Map())
}

func (h *ExercisesHandler) Delete(c echo.Context, _ *Empty) (model.Exercise, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Exercise{}, err
	}
	return h.exercises.Delete(c.Request().Context(), id)
}
