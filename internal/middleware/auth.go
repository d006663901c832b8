package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/server"
)

// CallerKey is the Echo context key holding the authenticated auth.Caller.
const CallerKey = "caller"

// AuthMiddleware verifies bearer tokens and attaches the caller identity
// to the request context.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth rejects requests without a valid bearer token.
//
// On success it stores the caller in Echo context under CallerKey and also
// sets user_id/user_role so the context enhancer and tracing middleware can
// pick them up for log and trace correlation.
func (am *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return errs.NewUnauthorizedError("Missing or malformed authorization header", false)
			}

			claims, err := am.server.TokenService.Verify(token)
			if err != nil {
				return errs.NewUnauthorizedError("Invalid or expired token", false)
			}

			if !claims.Verified {
				return errs.NewUnauthorizedError("Token pending two-factor verification", false)
			}

			caller, err := claims.Caller()
			if err != nil {
				return errs.NewUnauthorizedError("Invalid token subject", false)
			}

			c.Set(CallerKey, caller)
			c.Set(UserIDKey, strconv.FormatInt(caller.ID, 10))
			c.Set(UserRoleKey, string(caller.Role))

			return next(c)
		}
	}
}

// RequireRole allows only callers whose role is one of the given roles.
// It must run after RequireAuth.
func (am *AuthMiddleware) RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return errs.NewUnauthorizedError("Unauthorized", false)
			}

			for _, role := range roles {
				if caller.Role == role {
					return next(c)
				}
			}

			return errs.NewForbiddenError("Insufficient role for this resource", false)
		}
	}
}

// RequireStaff allows only staff callers (everyone except plain users).
// It must run after RequireAuth.
func (am *AuthMiddleware) RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := GetCaller(c)
			if !ok {
				return errs.NewUnauthorizedError("Unauthorized", false)
			}
			if !caller.IsStaff() {
				return errs.NewForbiddenError("Insufficient role for this resource", false)
			}
			return next(c)
		}
	}
}

// GetCaller retrieves the authenticated caller from Echo context.
// The second return value reports whether RequireAuth ran on this request.
func GetCaller(c echo.Context) (auth.Caller, bool) {
	caller, ok := c.Get(CallerKey).(auth.Caller)
	return caller, ok
}
