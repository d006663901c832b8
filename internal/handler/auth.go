package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/server"
	"github.com/fitstack/trainings-api/internal/service"
)

// AuthHandler serves the token endpoint.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// Login exchanges credentials for a signed access token.
func (h *AuthHandler) Login(c echo.Context, req *model.LoginRequest) (model.AuthToken, error) {
	return h.auth.Login(c.Request().Context(), req)
}

// VerifyCode exchanges a two-factor code from the Telegram bot for a
// verified access token.
func (h *AuthHandler) VerifyCode(c echo.Context, req *model.VerifyCodeRequest) (model.AuthToken, error) {
	return h.auth.VerifyCode(c.Request().Context(), req)
}
