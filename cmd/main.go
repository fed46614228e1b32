package main

import (
	"context"
	"log"

	"reservation-service/config"
	"reservation-service/internal/module/reservation/handler"
	"reservation-service/internal/module/reservation/payment"
	"reservation-service/internal/module/reservation/repositories"
	"reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/http"
	"reservation-service/internal/pkg/httpclient"
	"reservation-service/internal/pkg/lock"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/messagestream"
	"reservation-service/internal/pkg/middleware"
	"reservation-service/internal/pkg/redis"
	"reservation-service/internal/pkg/scheduler"
	router "reservation-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, startScheduler := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	if startScheduler != nil {
		go startScheduler()
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func()) {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.Setup()
	// init database
	db := database.GetConnection(&cfg.Database)
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()

	// init reservation lock
	var locker lock.Locker
	switch cfg.Reservation.LockBackend {
	case "local":
		locker = lock.NewLocalLocker()
	default:
		redisClient := redis.SetupClient(&cfg.Redis)
		locker = lock.NewRedisLocker(redisClient, cfg.Reservation.LockExpiry, cfg.Reservation.LockTries)
	}

	// init scheduler
	sch := scheduler.New(&cfg.Redis, logger)
	var asynqClient *asynq.Client
	if cfg.Scheduler.Enabled {
		asynqClient = sch.NewClient()
	} else if cfg.Reservation.PendingTTL > 0 {
		logger.Warn(ctx, "pending ttl is set but the scheduler is disabled, pending reservations will not expire")
	}

	// init message stream
	amqp := messagestream.NewAmqp(&cfg.MessageStream, logZap)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher, events will be dropped", err)
		publisher = messagestream.NewNopPublisher(amqp.Logger())
	}

	pendingTTL := cfg.Reservation.PendingTTL
	if asynqClient == nil {
		pendingTTL = 0
	}

	payments := payment.NewService(payment.DefaultRegistry(logger), logger)
	reservationRepo := repositories.New(db, logger, httpClient, &cfg.UserService, asynqClient)
	reservationUsecase := usecases.New(reservationRepo, logger, publisher, locker, payments, pendingTTL)
	middleware := middleware.Middleware{
		Log:  otelLogger,
		Repo: reservationRepo,
	}

	validator := validator.New()
	reservationHandler := handler.ReservationHandler{
		Log:           otelLogger,
		Validator:     validator,
		Usecase:       reservationUsecase,
		Publish:       publisher,
		PoisonedTopic: cfg.MessageStream.PoisonedTopic,
	}

	var messageRouters []*message.Router

	if subscriber != nil {
		consumeCreateReservationRouter, err := messagestream.NewRouter(amqp.Logger(), "create_reservation_handler", usecases.TopicCreateReservation, subscriber, reservationHandler.ConsumeCreateReservationQueue)
		if err != nil {
			logger.Error(ctx, "Failed to create create_reservation router", err)
		} else {
			messageRouters = append(messageRouters, consumeCreateReservationRouter)
		}
	}

	var startScheduler func()
	if cfg.Scheduler.Enabled {
		startScheduler = func() {
			go func() {
				if err := sch.ServeMonitoring(cfg.Scheduler.MonitoringPort); err != nil {
					logger.Error(ctx, "error start monitoring scheduler", err)
				}
			}()
			err := sch.Serve(cfg.Scheduler.Concurrency, scheduler.Handlers{
				scheduler.TypeExpirePendingReservation: reservationHandler.ExpirePendingReservation,
			})
			if err != nil {
				logger.Error(ctx, "error start handler scheduler", err)
			}
		}
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &reservationHandler, &middleware)

	return r, messageRouters, startScheduler

}
