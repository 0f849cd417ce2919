package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/product-api/internal/config"
	"github.com/tuanvumaihuynh/product-api/internal/event"
	"github.com/tuanvumaihuynh/product-api/internal/http"
	"github.com/tuanvumaihuynh/product-api/internal/log"
	"github.com/tuanvumaihuynh/product-api/internal/repository"
	"github.com/tuanvumaihuynh/product-api/internal/service"
	"github.com/tuanvumaihuynh/product-api/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-api/internal/telemetry"
	"github.com/tuanvumaihuynh/product-api/pkg/cmdutil"
	"github.com/tuanvumaihuynh/product-api/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running product api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		HTTP  config.HTTP
		Kafka config.Kafka
		Otel  config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	productRepository, err := repository.NewMemProductRepository(repository.SeedProducts())
	if err != nil {
		return fmt.Errorf("error creating product repository: %w", err)
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	var (
		publisher     event.Publisher = event.NopPublisher{}
		kafkaConsumer *mq.KafkaConsumer
	)
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err = mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()

		publisher = event.NewMQPublisher(kafkaProducer)
	} else {
		logger.InfoContext(ctx, "kafka addresses not set, product events are disabled")
	}

	productService := service.NewProductService(logger, v, productRepository, publisher)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	if kafkaConsumer != nil {
		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, productService)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
