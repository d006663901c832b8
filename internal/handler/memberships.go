package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// MembershipsHandler serves membership tier endpoints.
type MembershipsHandler struct {
	Handler
	memberships *repository.MembershipsRepository
}

func NewMembershipsHandler(s *server.Server, memberships *repository.MembershipsRepository) *MembershipsHandler {
	return &MembershipsHandler{
		Handler:     NewHandler(s),
		memberships: memberships,
	}
}

func (h *MembershipsHandler) Create(c echo.Context, req *model.CreateMembership) (model.Membership, error) {
	return h.memberships.Create(c.Request().Context(), req)
}

func (h *MembershipsHandler) Get(c echo.Context, _ *Empty) (model.Membership, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Membership{}, err
	}
	return h.memberships.Get(c.Request().Context(), id)
}

func (h *MembershipsHandler) List(c echo.Context, filters *model.MembershipFilters) ([]model.Membership, error) {
	return h.memberships.List(c.Request().Context(), filters)
}

func (h *MembershipsHandler) Update(c echo.Context, req *model.PatchMembership) (model.Membership, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Membership{}, err
	}
	return h.memberships.Update(c.Request().Context(), id, req.Map())
}

func (h *MembershipsHandler) Delete(c echo.Context, _ *Empty) (model.Membership, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Membership{}, err
	}
	return h.memberships.Delete(c.Request().Context(), id)
}
