package service

import (
	"github.com/fitstack/trainings-api/internal/lib/job"
	"github.com/fitstack/trainings-api/internal/lib/telegram"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

// Services groups the business-logic components handed to the handlers.
type Services struct {
	Auth *AuthService
	Job  *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var twoFactor twoFactorStore
	if s.Config.Auth.TwoFactorEnabled {
		twoFactor = telegram.NewLoginStore(s.Redis)
	}

	return &Services{
		Auth: NewAuthService(s, repos.Users, twoFactor),
		Job:  s.Job,
	}
}
