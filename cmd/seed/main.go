// Command seed loads a YAML fixture of materials and salaries through the
// farm services, so the usual events are published for every record.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gartstein/farm/internal/farm/config"
	"github.com/gartstein/farm/internal/farm/controller"
	"github.com/gartstein/farm/internal/farm/db"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/gartstein/farm/internal/farm/seed"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	fixturePath := flag.String("fixture", "internal/farm/seed/testdata/farm.yaml", "path to the YAML fixture")
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

	if err := run(cfg, *fixturePath, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(cfg *config.Config, fixturePath string, logger *zap.Logger) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return err
	}
	defer f.Close()

	fixture, err := seed.Parse(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	repo, err := db.NewRepository(ctx, cfg.Database())
	if err != nil {
		return err
	}
	defer repo.Close()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger.Named("producer"), cfg.Topic)
	if err != nil {
		return err
	}
	// Close flushes queued events before the process exits.
	defer producer.Close()

	m := metrics.NewNop()
	loader := seed.NewLoader(
		controller.NewMaterialService(repo, producer, m, logger.Named("materials")),
		controller.NewSalaryService(repo, producer, m, logger.Named("salaries")),
		logger.Named("seed"),
	)

	res, err := loader.Load(ctx, fixture)
	if err != nil {
		return err
	}
	logger.Info("Seed complete",
		zap.String("fixture", fixturePath),
		zap.Int("materials", res.Materials),
		zap.Int("salaries", res.Salaries),
		zap.Int("skipped", res.Skipped),
	)
	return nil
}
