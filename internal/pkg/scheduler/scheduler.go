package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"reservation-service/config"
	"reservation-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"go.uber.org/zap"
)

const (
	TypeExpirePendingReservation = "expire_pending_reservation"

	QueueReservations = "reservations"
)

// Handlers maps a task type to the function that processes it.
type Handlers map[string]asynq.HandlerFunc

type Scheduler struct {
	Log   log.Logger
	redis asynq.RedisClientOpt
}

func New(cfg *config.RedisConfig, log log.Logger) *Scheduler {
	return &Scheduler{
		Log: log,
		redis: asynq.RedisClientOpt{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		},
	}
}

func (s *Scheduler) NewClient() *asynq.Client {
	return asynq.NewClient(s.redis)
}

// NewExpirePendingReservationTask builds the delayed task that cancels a
// reservation still pending after processIn.
func NewExpirePendingReservationTask(payload []byte, processIn time.Duration) *asynq.Task {
	return asynq.NewTask(TypeExpirePendingReservation, payload,
		asynq.Queue(QueueReservations),
		asynq.ProcessIn(processIn),
		asynq.MaxRetry(5),
	)
}

// Serve blocks processing tasks until the server is shut down.
func (s *Scheduler) Serve(concurrency int, handlers Handlers) error {
	srv := asynq.NewServer(s.redis, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueReservations: 6,
			"default":         3,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			s.Log.Error(ctx, "task failed", zap.String("type", task.Type()), err)
		}),
	})

	mux := asynq.NewServeMux()
	for taskType, h := range handlers {
		mux.HandleFunc(taskType, h)
	}

	return srv.Run(mux)
}

// ServeMonitoring exposes asynqmon under /monitoring on port.
func (s *Scheduler) ServeMonitoring(port string) error {
	mon := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: s.redis,
	})

	mux := http.NewServeMux()
	mux.Handle(mon.RootPath()+"/", mon)

	return http.ListenAndServe(":"+port, mux)
}
