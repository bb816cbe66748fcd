package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/controller"
	redisinfra "github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/cache/redis"
	circuitbreaker "github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/database/postgres"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/tracing"
	localmiddleware "github.com/alimikegami/point-of-sales/cash-payment-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/renderer"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/service"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	traceProvider, err := tracing.InitTracing(config.TracingConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise tracing")
	}

	tracer := traceProvider.Tracer(config.TracingConfig.ServiceName)

	var publisher service.EventPublisher = service.NopEventPublisher{}
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err := kafka.CreateKafkaProducer(config)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer kafkaProducer.Close()

		cb := circuitbreaker.CreateCircuitBreaker(config.TracingConfig.ServiceName)
		publisher = kafka.CreateEventPublisher(kafkaProducer, cb)
	}

	var sequencer service.Sequencer
	if config.RedisConfig.Address != "" {
		rdb, err := redisinfra.CreateRedisClient(config.RedisConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		sequencer = redisinfra.CreateSequencer(rdb)
	}

	e := echo.New()
	e.HideBanner = true
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	metrics := echo.New()
	metrics.HideBanner = true
	metrics.GET("/metrics", echoprometheus.NewHandler())
	go func() {
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	paymentRepo := repository.CreatePaymentRepository(db)
	allocator := service.CreateReferenceAllocator(paymentRepo, sequencer)
	recorder := service.CreateFinancialTrxnRecorder(paymentRepo, publisher)
	initiationSvc := service.CreatePaymentInitiationService(paymentRepo, allocator, recorder, config)
	notificationSvc := service.CreateNotificationService(paymentRepo, publisher, config)

	controller.CreatePaymentController(g, initiationSvc, notificationSvc, renderer.CreateHTMLRenderer(), localmiddleware.IsLoggedIn(config.JWTConfig))

	go func() {
		if err := e.Start(fmt.Sprintf(":%s", config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server")
	}
	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down metrics server")
	}
	if err := traceProvider.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}
