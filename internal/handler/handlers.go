package handler

import (
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
	"github.com/fitstack/trainings-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers so router setup
// passes one object around instead of many.
type Handlers struct {
	Health            *HealthHandler
	OpenAPI           *OpenAPIHandler
	Auth              *AuthHandler
	Users             *UsersHandler
	Clients           *ClientsHandler
	Memberships       *MembershipsHandler
	Exercises         *ExercisesHandler
	Trainings         *TrainingsHandler
	TrainingExercises *TrainingExercisesHandler
	Payments          *PaymentsHandler
	Reports           *ReportsHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, repos *repository.Repositories, services *service.Services) *Handlers {
	return &Handlers{
		Health:            NewHealthHandler(s),
		OpenAPI:           NewOpenAPIHandler(s),
		Auth:              NewAuthHandler(s, services.Auth),
		Users:             NewUsersHandler(s, repos.Users),
		Clients:           NewClientsHandler(s, repos.Clients),
		Memberships:       NewMembershipsHandler(s, repos.Memberships),
		Exercises:         NewExercisesHandler(s, repos.Exercises),
		Trainings:         NewTrainingsHandler(s, repos.Trainings),
		TrainingExercises: NewTrainingExercisesHandler(s, repos.TrainingExercises),
		Payments:          NewPaymentsHandler(s, repos.Payments),
		Reports:           NewReportsHandler(s, repos.Reports),
	}
}
