package events

import (
	"context"

	"go.uber.org/zap"
)

// StockAlertHandler returns a consumer handler that logs low and critical
// stock alerts. Other event types are accepted and ignored.
func StockAlertHandler(logger *zap.Logger) func(context.Context, Event) error {
	logger = logger.Named("stock_alerts")
	return func(_ context.Context, event Event) error {
		if event.Type != StockAlert || event.Material == nil {
			return nil
		}
		m := event.Material
		logger.Warn("Material needs restocking",
			zap.String("material_id", m.ID.String()),
			zap.String("name", m.Name),
			zap.String("status", string(m.Status)),
			zap.Int64("current_stock", m.CurrentStock),
			zap.Int64("min_stock", m.MinStock),
			zap.String("unit", m.Unit),
		)
		return nil
	}
}
