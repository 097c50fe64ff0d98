package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sales/cmd"
	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/postgres"
	"sales/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(config.Logger.Level)

	if err = run(config, logger); err != nil {
		log.Fatalf("Sales service failed: %v", err)
	}

	logger.Info("Sales service stopped")
}

func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(config.Database)
	if err != nil {
		return err
	}

	publisher, err := kafka.NewShipmentPublisher(config.Kafka.Brokers, config.Kafka.ShipmentTopic, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.Error("Failed to close kafka publisher", "error", closeErr)
		}
	}()

	orderMetrics := metrics.NewOrderMetrics()

	app, err := cmd.NewCompositionRoot(config, gormDB, publisher, orderMetrics, logger)
	if err != nil {
		return err
	}

	createOrderHandler := app.CreateCreateOrderCommandHandler()
	server := httpadapter.NewServer(httpadapter.Handlers{
		AddProduct:   app.CreateAddProductCommandHandler(),
		GetProduct:   app.CreateGetProductQueryHandler(),
		CreateOrder:  &createOrderHandler,
		GetOrder:     app.CreateGetOrderQueryHandler(),
		ApproveOrder: app.CreateApproveOrderCommandHandler(),
		ShipOrder:    app.CreateShipOrderCommandHandler(),
	}, orderMetrics)

	e, err := httpadapter.NewEcho(server, logger, orderMetrics)
	if err != nil {
		return err
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "port", config.HTTP.Port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDatabase(config cmd.DatabaseConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return gormDB, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
