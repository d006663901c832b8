package repository

import (
	"github.com/fitstack/trainings-api/internal/lib/payment"
	"github.com/fitstack/trainings-api/internal/server"
)

// Repositories is the container for all repository instances, initialized
// once from the server's shared resources.
type Repositories struct {
	Users             *UsersRepository
	Clients           *ClientsRepository
	Memberships       *MembershipsRepository
	Exercises         *ExercisesRepository
	Trainings         *TrainingsRepository
	TrainingExercises *TrainingExercisesRepository
	Payments          *PaymentsRepository
	Reports           *ReportsRepository
}

// NewRepositories constructs the repository container from the server's
// database pool and config.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	paymentClient := payment.NewClient(s.Config, s.Logger)

	return &Repositories{
		Users:             NewUsersRepository(pool),
		Clients:           NewClientsRepository(pool),
		Memberships:       NewMembershipsRepository(pool),
		Exercises:         NewExercisesRepository(pool),
		Trainings:         NewTrainingsRepository(pool),
		TrainingExercises: NewTrainingExercisesRepository(pool),
		Payments:          NewPaymentsRepository(pool, paymentClient),
		Reports:           NewReportsRepository(pool),
	}
}
