package controller

import (
	"context"
	"fmt"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/inventory"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaterialService manages materials and their stock levels.
type MaterialService struct {
	repo     MaterialRepository
	producer EventProducer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewMaterialService constructs a MaterialService.
func NewMaterialService(repo MaterialRepository, producer EventProducer, m *metrics.Metrics, logger *zap.Logger) *MaterialService {
	return &MaterialService{
		repo:     repo,
		producer: producer,
		metrics:  m,
		logger:   logger.Named("material_service"),
	}
}

// CreateMaterial validates a new material, derives its value and status,
// and stores it under a fresh ID.
func (s *MaterialService) CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error) {
	if err := inventory.Validate(*material); err != nil {
		return nil, err
	}

	exists, err := s.repo.MaterialExistsByName(ctx, material.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, e.ErrDuplicateName
	}

	created := inventory.Recompute(*material)
	created.ID = uuid.New()
	if err := s.repo.CreateMaterial(ctx, &created); err != nil {
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to create material: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.MaterialCreated, Material: &created})
	return &created, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to get material: %w", err)
		})
	}
	return material, nil
}

func (s *MaterialService) ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error) {
	for _, status := range filter.Statuses {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown stock status %q", e.ErrInvalidInput, status)
		}
	}
	materials, err := s.repo.ListMaterials(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

// UpdateMaterial applies an administrative edit. Value and status are
// re-derived and a stock change is recorded as an adjustment.
func (s *MaterialService) UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid material ID", e.ErrInvalidInput)
	}

	updated, movement, err := s.repo.ModifyMaterial(ctx, update.ID, models.MovementAdjustment, "manual update",
		func(m models.Material) (models.Material, error) {
			update.Apply(&m)
			if err := inventory.Validate(m); err != nil {
				return models.Material{}, err
			}
			return inventory.Recompute(m), nil
		})
	if err != nil {
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to update material: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.MaterialUpdated, Material: updated, Movement: movement})
	if movement != nil {
		s.alertIfNeeded(updated)
	}
	return updated, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		return passThrough(err, func(err error) error {
			return fmt.Errorf("failed to get material for deletion: %w", err)
		})
	}

	if err := s.repo.DeleteMaterial(ctx, id); err != nil {
		return passThrough(err, func(err error) error {
			return fmt.Errorf("failed to delete material: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.MaterialDeleted, Material: material})
	return nil
}

// WithdrawStock takes quantity units out of a material's stock. The record
// is left untouched when the withdrawal is rejected.
func (s *MaterialService) WithdrawStock(ctx context.Context, id uuid.UUID, quantity int64, purpose string) (*models.Material, *models.StockMovement, error) {
	updated, movement, err := s.repo.ModifyMaterial(ctx, id, models.MovementWithdrawal, purpose,
		func(m models.Material) (models.Material, error) {
			return inventory.Withdraw(m, quantity)
		})
	s.metrics.Withdrawal(resultOf(err), quantity)
	if err != nil {
		s.logger.Info("Withdrawal rejected",
			zap.String("material_id", id.String()),
			zap.Int64("quantity", quantity),
			zap.Error(err),
		)
		return nil, nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to withdraw stock: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.StockWithdrawn, Material: updated, Movement: movement})
	s.alertIfNeeded(updated)
	return updated, movement, nil
}

// RestockMaterial adds quantity units to a material's stock.
func (s *MaterialService) RestockMaterial(ctx context.Context, id uuid.UUID, quantity int64, note string) (*models.Material, *models.StockMovement, error) {
	updated, movement, err := s.repo.ModifyMaterial(ctx, id, models.MovementRestock, note,
		func(m models.Material) (models.Material, error) {
			return inventory.Restock(m, quantity)
		})
	s.metrics.Restock(resultOf(err))
	if err != nil {
		return nil, nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to restock material: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.StockRestocked, Material: updated, Movement: movement})
	return updated, movement, nil
}

// ListMovements returns the stock ledger of an existing material.
func (s *MaterialService) ListMovements(ctx context.Context, materialID uuid.UUID) ([]*models.StockMovement, error) {
	if _, err := s.GetMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	movements, err := s.repo.ListMovements(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, nil
}

func (s *MaterialService) alertIfNeeded(m *models.Material) {
	if !inventory.NeedsAttention(m.Status) {
		return
	}
	s.metrics.StockAlert(string(m.Status))
	s.logger.Warn("Material stock below threshold",
		zap.String("material_id", m.ID.String()),
		zap.String("status", string(m.Status)),
		zap.Int64("current_stock", m.CurrentStock),
		zap.Int64("min_stock", m.MinStock),
	)
	s.producer.Produce(events.Event{Type: events.StockAlert, Material: m})
}
