package controller

import (
	"context"
	"sync"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
)

// MockMaterialRepository implements MaterialRepository for testing
type MockMaterialRepository struct {
	createMaterial       func(context.Context, *models.Material) error
	getMaterial          func(context.Context, uuid.UUID) (*models.Material, error)
	listMaterials        func(context.Context, models.MaterialFilter) ([]*models.Material, error)
	materialExistsByName func(context.Context, string) (bool, error)
	modifyMaterial       func(context.Context, uuid.UUID, models.MovementKind, string, func(models.Material) (models.Material, error)) (*models.Material, *models.StockMovement, error)
	deleteMaterial       func(context.Context, uuid.UUID) error
	listMovements        func(context.Context, uuid.UUID) ([]*models.StockMovement, error)
}

func (m *MockMaterialRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	return m.createMaterial(ctx, material)
}

func (m *MockMaterialRepository) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	return m.getMaterial(ctx, id)
}

func (m *MockMaterialRepository) ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error) {
	return m.listMaterials(ctx, filter)
}

func (m *MockMaterialRepository) MaterialExistsByName(ctx context.Context, name string) (bool, error) {
	return m.materialExistsByName(ctx, name)
}

func (m *MockMaterialRepository) ModifyMaterial(
	ctx context.Context,
	id uuid.UUID,
	kind models.MovementKind,
	note string,
	fn func(models.Material) (models.Material, error),
) (*models.Material, *models.StockMovement, error) {
	return m.modifyMaterial(ctx, id, kind, note, fn)
}

func (m *MockMaterialRepository) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return m.deleteMaterial(ctx, id)
}

func (m *MockMaterialRepository) ListMovements(ctx context.Context, id uuid.UUID) ([]*models.StockMovement, error) {
	return m.listMovements(ctx, id)
}

// storedMaterial returns a modifyMaterial implementation that behaves like
// the database repository for a single stored record.
func storedMaterial(stored *models.Material) func(context.Context, uuid.UUID, models.MovementKind, string, func(models.Material) (models.Material, error)) (*models.Material, *models.StockMovement, error) {
	return func(_ context.Context, id uuid.UUID, kind models.MovementKind, note string, fn func(models.Material) (models.Material, error)) (*models.Material, *models.StockMovement, error) {
		if id != stored.ID {
			return nil, nil, e.ErrNotFound
		}
		updated, err := fn(*stored)
		if err != nil {
			return nil, nil, err
		}
		var movement *models.StockMovement
		if updated.CurrentStock != stored.CurrentStock {
			movement = &models.StockMovement{
				ID:          uuid.New(),
				MaterialID:  id,
				Kind:        kind,
				Quantity:    updated.CurrentStock - stored.CurrentStock,
				StockBefore: stored.CurrentStock,
				StockAfter:  updated.CurrentStock,
				Note:        note,
			}
		}
		*stored = updated
		return &updated, movement, nil
	}
}

// MockSalaryRepository implements SalaryRepository for testing
type MockSalaryRepository struct {
	createSalary func(context.Context, *models.Salary) error
	getSalary    func(context.Context, uuid.UUID) (*models.Salary, error)
	listSalaries func(context.Context, models.SalaryFilter) ([]*models.Salary, error)
	modifySalary func(context.Context, uuid.UUID, func(models.Salary) (models.Salary, error)) (*models.Salary, error)
	deleteSalary func(context.Context, uuid.UUID) error
}

func (m *MockSalaryRepository) CreateSalary(ctx context.Context, s *models.Salary) error {
	return m.createSalary(ctx, s)
}

func (m *MockSalaryRepository) GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error) {
	return m.getSalary(ctx, id)
}

func (m *MockSalaryRepository) ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error) {
	return m.listSalaries(ctx, filter)
}

func (m *MockSalaryRepository) ModifySalary(ctx context.Context, id uuid.UUID, fn func(models.Salary) (models.Salary, error)) (*models.Salary, error) {
	return m.modifySalary(ctx, id, fn)
}

func (m *MockSalaryRepository) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	return m.deleteSalary(ctx, id)
}

func storedSalary(stored *models.Salary) func(context.Context, uuid.UUID, func(models.Salary) (models.Salary, error)) (*models.Salary, error) {
	return func(_ context.Context, id uuid.UUID, fn func(models.Salary) (models.Salary, error)) (*models.Salary, error) {
		if id != stored.ID {
			return nil, e.ErrNotFound
		}
		updated, err := fn(*stored)
		if err != nil {
			return nil, err
		}
		*stored = updated
		return &updated, nil
	}
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []events.Event
}

// Produce records the event.
func (m *MockProducer) Produce(event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.producedEvents = append(m.producedEvents, event)
}

func (m *MockProducer) types() []events.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]events.EventType, 0, len(m.producedEvents))
	for _, ev := range m.producedEvents {
		types = append(types, ev.Type)
	}
	return types
}
