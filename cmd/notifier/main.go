package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roomly/internal/notifier"
	"roomly/pkg/config"
	"roomly/pkg/kafka"
	kafka_config "roomly/pkg/kafka/config"
	kafka_middleware "roomly/pkg/kafka/middleware"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Notifier service")

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	dispatcher := notifier.New(cfg.Log)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.BookingsTopic,
		cfg.NotifierGroupID,
		cfg.BookingsDLQTopic,
		dispatcher.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	if kafkaCfg.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware())
	}

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	cfg.Log.Info("Consuming booking events",
		"topic", cfg.BookingsTopic,
		"group_id", cfg.NotifierGroupID,
	)

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}

	cfg.Log.Info("Notifier stopped gracefully")
}
