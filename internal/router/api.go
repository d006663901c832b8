package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/handler"
	"github.com/fitstack/trainings-api/internal/middleware"
	"github.com/fitstack/trainings-api/internal/model"
)

// registerAuthRoutes registers the public token endpoint. Login is rate
// limited per IP to slow down credential stuffing.
func registerAuthRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	auth := r.Group("/jwt-auth", m.RateLimit.LimitByIP(5, 10))
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))
	auth.POST("/verify-code", handler.Handle(h.Auth.Handler, h.Auth.VerifyCode, http.StatusOK))
}

// registerAPIRoutes registers the entity route groups.
//
// Guards: /users is admin only. Catalog-style entities (memberships,
// exercises, trainings, training links) are readable by any authenticated
// caller but writable only by staff. Clients enforce per-row ownership in
// the repository, so single-row routes only require authentication.
// Payments are created by any authenticated caller; reading and mutating
// them is staff work. Reports are staff readable and written by the system
// role.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	authed := r.Group("", m.Auth.RequireAuth())
	staff := m.Auth.RequireStaff()
	admin := m.Auth.RequireRole(model.RoleAdmin)

	users := authed.Group("/users", admin)
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated))
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK))
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK))
	users.PATCH("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.Delete, http.StatusOK))

	clients := authed.Group("/clients")
	clients.POST("", handler.Handle(h.Clients.Handler, h.Clients.Create, http.StatusCreated), staff)
	clients.GET("", handler.Handle(h.Clients.Handler, h.Clients.List, http.StatusOK), staff)
	clients.GET("/:id", handler.Handle(h.Clients.Handler, h.Clients.Get, http.StatusOK))
	clients.PUT("/:id", handler.Handle(h.Clients.Handler, h.Clients.Update, http.StatusOK))
	clients.PATCH("/:id", handler.Handle(h.Clients.Handler, h.Clients.Update, http.StatusOK))
	clients.DELETE("/:id", handler.Handle(h.Clients.Handler, h.Clients.Delete, http.StatusOK))

	memberships := authed.Group("/memberships")
	memberships.POST("", handler.Handle(h.Memberships.Handler, h.Memberships.Create, http.StatusCreated), staff)
	memberships.GET("", handler.Handle(h.Memberships.Handler, h.Memberships.List, http.StatusOK))
	memberships.GET("/:id", handler.Handle(h.Memberships.Handler, h.Memberships.Get, http.StatusOK))
	memberships.PUT("/:id", handler.Handle(h.Memberships.Handler, h.Memberships.Update, http.StatusOK), staff)
	memberships.PATCH("/:id", handler.Handle(h.Memberships.Handler, h.Memberships.Update, http.StatusOK), staff)
	memberships.DELETE("/:id", handler.Handle(h.Memberships.Handler, h.Memberships.Delete, http.StatusOK), staff)

	exercises := authed.Group("/exercises")
	exercises.POST("", handler.Handle(h.Exercises.Handler, h.Exercises.Create, http.StatusCreated), staff)
	exercises.GET("", handler.Handle(h.Exercises.Handler, h.Exercises.List, http.StatusOK))
	exercises.GET("/:id", handler.Handle(h.Exercises.Handler, h.Exercises.Get, http.StatusOK))
	exercises.PUT("/:id", handler.Handle(h.Exercises.Handler, h.Exercises.Update, http.StatusOK), staff)
	exercises.PATCH("/:id", handler.Handle(h.Exercises.Handler, h.Exercises.Update, http.StatusOK), staff)
	exercises.DELETE("/:id", handler.Handle(h.Exercises.Handler, h.Exercises.Delete, http.StatusOK), staff)

	trainings := authed.Group("/trainings")
	trainings.POST("", handler.Handle(h.Trainings.Handler, h.Trainings.Create, http.StatusCreated), staff)
	trainings.POST("/exercise-ids", handler.Handle(h.Trainings.Handler, h.Trainings.CreateWithExercises, http.StatusCreated), staff)
	trainings.GET("", handler.Handle(h.Trainings.Handler, h.Trainings.List, http.StatusOK))
	trainings.GET("/exercise-ids/:id", handler.Handle(h.Trainings.Handler, h.Trainings.GetWithExercises, http.StatusOK))
	trainings.GET("/:id", handler.Handle(h.Trainings.Handler, h.Trainings.Get, http.StatusOK))
	trainings.PUT("/:id", handler.Handle(h.Trainings.Handler, h.Trainings.Update, http.StatusOK), staff)
	trainings.PATCH("/:id", handler.Handle(h.Trainings.Handler, h.Trainings.Update, http.StatusOK), staff)
	trainings.DELETE("/:id", handler.Handle(h.Trainings.Handler, h.Trainings.Delete, http.StatusOK), staff)

	links := authed.Group("/trainings-exercises")
	links.POST("", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.Create, http.StatusCreated), staff)
	links.GET("", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.List, http.StatusOK))
	links.GET("/:training_id/:exercise_id", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.Get, http.StatusOK))
	links.PUT("/:training_id/:exercise_id", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.Update, http.StatusOK), staff)
	links.PATCH("/:training_id/:exercise_id", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.Update, http.StatusOK), staff)
	links.DELETE("/:training_id/:exercise_id", handler.Handle(h.TrainingExercises.Handler, h.TrainingExercises.Delete, http.StatusOK), staff)

	payments := authed.Group("/payments")
	payments.POST("", handler.Handle(h.Payments.Handler, h.Payments.Create, http.StatusCreated))
	payments.GET("", handler.Handle(h.Payments.Handler, h.Payments.List, http.StatusOK), staff)
	payments.GET("/:id", handler.Handle(h.Payments.Handler, h.Payments.Get, http.StatusOK), staff)
	payments.PUT("/:id", handler.Handle(h.Payments.Handler, h.Payments.Update, http.StatusOK), staff)
	payments.PATCH("/:id", handler.Handle(h.Payments.Handler, h.Payments.Update, http.StatusOK), staff)
	payments.DELETE("/:id", handler.Handle(h.Payments.Handler, h.Payments.Delete, http.StatusOK), admin)

	reports := authed.Group("/reports", staff)
	reports.POST("", handler.Handle(h.Reports.Handler, h.Reports.Create, http.StatusCreated), m.Auth.RequireRole(model.RoleSystem, model.RoleAdmin))
	reports.GET("", handler.Handle(h.Reports.Handler, h.Reports.List, http.StatusOK))
	reports.GET("/:id", handler.Handle(h.Reports.Handler, h.Reports.Get, http.StatusOK))
	reports.GET("/:id/download", handler.HandleFile(h.Reports.Handler, h.Reports.Download, http.StatusOK, "report.json", "application/json"))
	reports.DELETE("/:id", handler.Handle(h.Reports.Handler, h.Reports.Delete, http.StatusOK), admin)
}
