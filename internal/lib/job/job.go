// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - Producers enqueue tasks using asynq.Client.
//   - The worker process runs asynq.Server, pulling tasks and executing
//     handlers. Scheduled tasks are emitted by asynq.Scheduler on cron
//     entries.
//
// Delivery is at-least-once: a handler error triggers a retry, and a task
// that exhausts its retries is moved to the archive, which serves as the
// dead-letter set. Handlers are written to be idempotent.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/fitstack/trainings-api/internal/config"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs worker processes that pull tasks from Redis.
	server *asynq.Server

	// scheduler emits cron-scheduled tasks. Only the worker process runs it.
	scheduler *asynq.Scheduler

	logger *zerolog.Logger

	handlers *Handlers

	started bool
}

// NewJobService creates a JobService backed by Redis from cfg.
//
// Queue weights distribute the worker pool: payment-status updates run on
// the critical queue, welcome emails on default, scheduled maintenance on
// low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})

	return &JobService{
		Client:    client,
		server:    server,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Start registers task handlers and cron entries and starts the worker
// server and the scheduler. InitHandlers must have been called first.
// Start does not block; Stop shuts the components down.
func (j *JobService) Start() error {
	if j.handlers == nil {
		return ErrHandlersNotInitialized
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskPaymentStatus, j.handlePaymentStatusTask)
	mux.HandleFunc(TaskMembershipExpire, j.handleMembershipExpireTask)
	mux.HandleFunc(TaskUserReport, j.handleUserReportTask)

	// Expiry runs nightly after the day's payments settle; the user report
	// goes out in the morning.
	if _, err := j.scheduler.Register("0 3 * * *", asynq.NewTask(TaskMembershipExpire, nil, asynq.Queue("low"))); err != nil {
		return err
	}
	if _, err := j.scheduler.Register("0 8 * * *", asynq.NewTask(TaskUserReport, nil, asynq.Queue("low"))); err != nil {
		return err
	}

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}
	if err := j.scheduler.Start(); err != nil {
		j.server.Shutdown()
		return err
	}

	j.started = true
	return nil
}

// Stop gracefully stops the scheduler and worker server and closes client
// resources. Safe to call when only the client was used.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	if j.started {
		j.scheduler.Shutdown()
		j.server.Shutdown()
	}
	j.Client.Close()
}
