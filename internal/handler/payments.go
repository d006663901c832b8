package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// PaymentsHandler serves payment endpoints. Creation runs the external
// payment-service workflow; status updates arrive asynchronously through
// the queue consumer, not through this API.
type PaymentsHandler struct {
	Handler
	payments *repository.PaymentsRepository
}

func NewPaymentsHandler(s *server.Server, payments *repository.PaymentsRepository) *PaymentsHandler {
	return &PaymentsHandler{
		Handler:  NewHandler(s),
		payments: payments,
	}
}

// Create stores a pending payment, submits the order to the payment
// service, and returns the stored row plus the payment-page link. A
// rejected order still persists as a FAILED row.
func (h *PaymentsHandler) Create(c echo.Context, req *model.CreatePayment) (model.PaymentWithLink, error) {
	return h.payments.Create(c.Request().Context(), req)
}

func (h *PaymentsHandler) Get(c echo.Context, _ *Empty) (model.Payment, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Payment{}, err
	}
	return h.payments.Get(c.Request().Context(), id)
}

func (h *PaymentsHandler) List(c echo.Context, filters *model.PaymentFilters) ([]model.Payment, error) {
	return h.payments.List(c.Request().Context(), filters)
}

func (h *PaymentsHandler) Update(c echo.Context, req *model.PatchPayment) (model.Payment, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Payment{}, err
	}
	return h.payments.Update(c.Request().Context(), id, req.Map())
}

func (h *PaymentsHandler) Delete(c echo.Context, _ *Empty) (model.Payment, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Payment{}, err
	}
	return h.payments.Delete(c.Request().Context(), id)
}
