// Package controller implements the service layer of the farm service:
// it loads records through the repository, applies the inventory and
// payroll rules to them, persists the result and publishes events.
package controller

import (
	"context"
	"errors"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
)

type EventProducer interface {
	Produce(event events.Event)
}

// MaterialRepository defines the storage interface for materials and their
// stock ledger.
type MaterialRepository interface {
	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error)
	ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error)
	MaterialExistsByName(ctx context.Context, name string) (bool, error)
	ModifyMaterial(
		ctx context.Context,
		id uuid.UUID,
		kind models.MovementKind,
		note string,
		fn func(models.Material) (models.Material, error),
	) (*models.Material, *models.StockMovement, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
	ListMovements(ctx context.Context, materialID uuid.UUID) ([]*models.StockMovement, error)
}

// SalaryRepository defines the storage interface for salary records.
type SalaryRepository interface {
	CreateSalary(ctx context.Context, salary *models.Salary) error
	GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error)
	ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error)
	ModifySalary(
		ctx context.Context,
		id uuid.UUID,
		fn func(models.Salary) (models.Salary, error),
	) (*models.Salary, error)
	DeleteSalary(ctx context.Context, id uuid.UUID) error
}

// isRejection reports whether err is a deterministic rejection of the
// caller's input rather than a failure of the service.
func isRejection(err error) bool {
	return errors.Is(err, e.ErrInvalidInput) ||
		errors.Is(err, e.ErrInsufficientStock) ||
		errors.Is(err, e.ErrNotFound)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case isRejection(err):
		return metrics.ResultRejected
	default:
		return metrics.ResultError
	}
}

// passThrough returns sentinel-classified errors untouched and wraps the rest.
func passThrough(err error, wrap func(error) error) error {
	if isRejection(err) || errors.Is(err, e.ErrDuplicateName) {
		return err
	}
	return wrap(err)
}
