package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gartstein/farm/internal/farm/auth"
	"github.com/gartstein/farm/internal/farm/config"
	"github.com/gartstein/farm/internal/farm/controller"
	"github.com/gartstein/farm/internal/farm/db"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/handlers"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const startupTimeout = time.Minute

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to load config", zap.Error(err))
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to build logger", zap.Error(err))
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	ctx := context.Background()

	repo, err := connectDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger.Named("producer"), cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	m := metrics.NewNop()
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}
	producer.OnDrop(m.EventDropped)

	materialSvc := controller.NewMaterialService(repo, producer, m, logger.Named("materials"))
	salarySvc := controller.NewSalaryService(repo, producer, m, logger.Named("salaries"))

	inventoryHandler := handlers.NewInventoryHandler(materialSvc, logger.Named("inventory"))
	payrollHandler := handlers.NewPayrollHandler(salarySvc, logger.Named("payroll"))

	authInterceptor := auth.NewAuthInterceptor(cfg.JWTSecret)
	server := handlers.NewServer(cfg.GRPCPort, cfg.HTTPPort, logger, grpc.UnaryInterceptor(authInterceptor.Unary()))
	server.RegisterGRPCHandlers(inventoryHandler, payrollHandler)

	opts := handlers.GatewayOptions{JWTSecret: cfg.JWTSecret}
	if cfg.MetricsEnabled {
		opts.Metrics = promhttp.Handler()
	}
	if err := server.RegisterHTTPGateway(ctx, inventoryHandler, payrollHandler, opts); err != nil {
		logger.Fatal("Failed to register HTTP gateway", zap.Error(err))
	}

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start servers", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// connectDatabase retries until Postgres accepts connections or startupTimeout passes.
func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*db.Repository, error) {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = startupTimeout

	return backoff.RetryNotifyWithData(func() (*db.Repository, error) {
		return db.NewRepository(ctx, cfg.Database())
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.Warn("database not ready, retrying", zap.Error(err), zap.Duration("retry_in", next))
	})
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down servers.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Servers stopped properly")
}
