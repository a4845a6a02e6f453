package worker

import (
	"context"
	"encoding/json"
	"time"

	"campus-recommender/core/config"
	"campus-recommender/core/constants"
	"campus-recommender/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EventReminderPayload is the body of an event:reminder task
type EventReminderPayload struct {
	UserID     uuid.UUID `json:"user_id"`
	EventID    uuid.UUID `json:"event_id"`
	EventTitle string    `json:"event_title"`
	StartsAt   time.Time `json:"starts_at"`
}

// ReminderSink receives due reminders; implemented by the
// notification service
type ReminderSink interface {
	NotifyEventReminder(ctx context.Context, payload EventReminderPayload) error
}

// Enqueuer schedules background tasks
type Enqueuer interface {
	EnqueueEventReminder(payload EventReminderPayload, processAt time.Time) error
	Close() error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewEnqueuer(cfg config.RedisConfig) Enqueuer {
	return &asynqEnqueuer{client: asynq.NewClient(redisOpt(cfg))}
}

func (e *asynqEnqueuer) EnqueueEventReminder(payload EventReminderPayload, processAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskTypeEventReminder, body)
	info, err := e.client.Enqueue(task, asynq.ProcessAt(processAt), asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Worker:EnqueueEventReminder", "error", err)
		return err
	}

	logger.Info("Reminder scheduled",
		"task_id", info.ID,
		"event_id", payload.EventID.String(),
		"process_at", processAt.Format(time.RFC3339),
	)
	return nil
}

func (e *asynqEnqueuer) Close() error {
	return e.client.Close()
}

// Server runs the background task processor
type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewServer(cfg config.RedisConfig, sink ReminderSink) *Server {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskTypeEventReminder, func(ctx context.Context, t *asynq.Task) error {
		var payload EventReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("Worker:EventReminder:Unmarshal", "error", err)
			return err
		}
		return sink.NotifyEventReminder(ctx, payload)
	})

	return &Server{srv: srv, mux: mux}
}

// Start runs the worker loop in its own goroutine
func (s *Server) Start() error {
	return s.srv.Start(s.mux)
}

func (s *Server) Shutdown() {
	s.srv.Shutdown()
}
