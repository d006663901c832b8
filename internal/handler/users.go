package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/lib/job"
	"github.com/fitstack/trainings-api/internal/middleware"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// UsersHandler serves account management endpoints.
type UsersHandler struct {
	Handler
	users *repository.UsersRepository
}

func NewUsersHandler(s *server.Server, users *repository.UsersRepository) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Create registers a new account and enqueues a welcome email. Email
// delivery is best effort; a queue failure never fails the registration.
func (h *UsersHandler) Create(c echo.Context, req *model.CreateUser) (model.User, error) {
	ctx := c.Request().Context()

	user, err := h.users.Create(ctx, req)
	if err != nil {
		return model.User{}, err
	}

	if task, err := job.NewWelcomeEmailTask(user.Email, user.Username); err == nil {
		if _, err := h.server.Job.Client.EnqueueContext(ctx, task); err != nil {
			middleware.GetLogger(c).Warn().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		}
	}

	return user, nil
}

func (h *UsersHandler) Get(c echo.Context, _ *Empty) (model.User, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.User{}, err
	}
	return h.users.Get(c.Request().Context(), id)
}

func (h *UsersHandler) List(c echo.Context, filters *model.UserFilters) ([]model.User, error) {
	return h.users.List(c.Request().Context(), filters)
}

func (h *UsersHandler) Update(c echo.Context, req *model.PatchUser) (model.User, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.User{}, err
	}
	return h.users.Update(c.Request().Context(), id, req.Map())
}

// Delete soft-deletes the account; the row stays for audit but disappears
// from lookups.
func (h *UsersHandler) Delete(c echo.Context, _ *Empty) (model.User, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.User{}, err
	}
	return h.users.Delete(c.Request().Context(), id)
}
