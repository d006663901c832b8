package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// ClientsHandler serves gym client endpoints. Single-client operations are
// ownership checked in the repository: a plain user only reaches their own
// client profile, staff roles reach any.
type ClientsHandler struct {
	Handler
	clients *repository.ClientsRepository
}

func NewClientsHandler(s *server.Server, clients *repository.ClientsRepository) *ClientsHandler {
	return &ClientsHandler{
		Handler: NewHandler(s),
		clients: clients,
	}
}

func (h *ClientsHandler) Create(c echo.Context, req *model.CreateClient) (model.Client, error) {
	return h.clients.Create(c.Request().Context(), req)
}

func (h *ClientsHandler) Get(c echo.Context, _ *Empty) (model.Client, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Client{}, err
	}

	caller, err := callerFrom(c)
	if err != nil {
		return model.Client{}, err
	}

	return h.clients.Get(c.Request().Context(), caller, id)
}

func (h *ClientsHandler) List(c echo.Context, filters *model.ClientFilters) ([]model.Client, error) {
	return h.clients.List(c.Request().Context(), filters)
}

func (h *ClientsHandler) Update(c echo.Context, req *model.PatchClient) (model.Client, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Client{}, err
	}

	caller, err := callerFrom(c)
	if err != nil {
		return model.Client{}, err
	}

	return h.clients.Update(c.Request().Context(), caller, id, req.Map())
}

func (h *ClientsHandler) Delete(c echo.Context, _ *Empty) (model.Client, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Client{}, err
	}

	caller, err := callerFrom(c)
	if err != nil {
		return model.Client{}, err
	}

	return h.clients.Delete(c.Request().Context(), caller, id)
}
