// Command alerts consumes farm events and logs materials that need restocking.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/farm/internal/farm/config"
	"github.com/gartstein/farm/internal/farm/events"
	"go.uber.org/zap"
)

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
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := events.NewConsumer(cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.Topic, logger.Named("consumer"))
	consumer.RegisterHandler(events.StockAlertHandler(logger))
	consumer.Start(ctx)

	logger.Info("Listening for stock alerts",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.Topic),
		zap.String("group", cfg.ConsumerGroup),
	)

	<-ctx.Done()
	<-consumer.Done()
	consumer.Close()
	logger.Info("Consumer stopped")
}
