package main

import (
	"roomly/internal/bookings/handler"
	"roomly/internal/bookings/service"
	"roomly/internal/bookings/validator"
	"roomly/internal/catalog/repository"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
	kafka_middleware "roomly/pkg/kafka/middleware"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Bookings service")

	producer := initProducer(cfg)
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}()

	bookingService := initServices(cfg, producer)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingsTopic, cfg.BookingsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)

	var catalogRepo repository.CatalogRepository
	switch cfg.CatalogDriver {
	case "memory":
		catalogRepo = repository.NewSeededCatalogRepository()
		cfg.Log.Info("Catalog served from built-in seed data")
	default:
		cfg.SetMongo()
		catalogRepo = repository.NewMongoCatalogRepository(cfg)
		cfg.Log.Info("Catalog served from MongoDB", "database", cfg.MongoDatabaseName)
	}

	bookingService := service.NewBookingService(
		catalogRepo,
		bookingValidator,
		producer,
		cfg,
	)

	cfg.Log.Info("Booking service initialized")
	return bookingService
}
