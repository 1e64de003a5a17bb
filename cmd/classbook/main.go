package main

import (
	"classbook/internal/bookings/events"
	bookinghandler "classbook/internal/bookings/handler"
	bookingrepo "classbook/internal/bookings/repository"
	bookingservice "classbook/internal/bookings/service"
	"classbook/internal/bookings/validator"
	classhandler "classbook/internal/classes/handler"
	classrepo "classbook/internal/classes/repository"
	classservice "classbook/internal/classes/service"
	"classbook/internal/health"
	"classbook/pkg/app"
	"classbook/pkg/config"
	"classbook/pkg/kafka"
	kafka_middleware "classbook/pkg/kafka/middleware"
	"classbook/pkg/model"

	"github.com/google/uuid"
)

const ServiceName = "classbook"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Classbook service")
	serverApp := app.NewApplication(cfg)

	classes := initCatalog(cfg)
	publisher := initPublisher(cfg, serverApp)

	classService := classservice.NewClassService(classes, cfg)
	bookingService := bookingservice.NewBookingService(
		bookingrepo.NewInMemoryBookingRepository(),
		classes,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	serverApp.SetApp(
		health.NewHealthHandler(classes, cfg.Log.With("handler", "health")),
		classhandler.NewClassHandler(classService, cfg.Log.With("handler", "classes")),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log.With("handler", "bookings")),
	)
	serverApp.Run()
}

func initCatalog(cfg *config.Config) classrepo.ClassRepository {
	var (
		sessions []model.ClassSession
		err      error
	)
	if cfg.ClassSeedFile != "" {
		sessions, err = classrepo.LoadSeedFile(cfg.ClassSeedFile, cfg.ReferenceLocation, uuid.NewString)
	} else {
		sessions, err = classrepo.DefaultSessions(cfg.ReferenceLocation, uuid.NewString)
	}
	if err != nil {
		cfg.Log.Fatal("Failed to load class catalog", "seed_file", cfg.ClassSeedFile, "error", err)
	}

	classes, err := classrepo.NewInMemoryClassRepository(sessions)
	if err != nil {
		cfg.Log.Fatal("Failed to build class catalog", "error", err)
	}

	cfg.Log.Info("Class catalog initialized", "classes", len(sessions), "reference_timezone", cfg.ReferenceTimeZone)
	return classes
}

func initPublisher(cfg *config.Config, serverApp *app.Application) events.Publisher {
	if !cfg.Kafka.Enabled() {
		cfg.Log.Info("Booking events disabled, no Kafka brokers configured")
		return events.NewNoopPublisher()
	}

	log := cfg.Log.With("topic", cfg.BookingEventsTopic)

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.BookingEventsTopic, log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
	serverApp.OnShutdown("kafka producer", func() error {
		stats := producer.Stats()
		log.Info("Kafka producer stats",
			"messages", stats.Messages,
			"errors", stats.Errors,
			"retries", stats.Retries,
		)
		return producer.Close()
	})

	log.Info("Booking events enabled", "brokers", cfg.Kafka.Brokers)
	return events.NewKafkaPublisher(producer, log)
}
