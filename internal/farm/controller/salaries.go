package controller

import (
	"context"
	"fmt"
	"time"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/gartstein/farm/internal/farm/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SalaryService manages salary records and their payments.
type SalaryService struct {
	repo     SalaryRepository
	producer EventProducer
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewSalaryService constructs a SalaryService.
func NewSalaryService(repo SalaryRepository, producer EventProducer, m *metrics.Metrics, logger *zap.Logger) *SalaryService {
	return &SalaryService{
		repo:     repo,
		producer: producer,
		metrics:  m,
		logger:   logger.Named("salary_service"),
		now:      time.Now,
	}
}

// CreateSalary stores a new salary record. A missing paid amount counts as
// zero, a missing month defaults to the current one, and the status is
// always derived.
func (s *SalaryService) CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error) {
	created, err := payroll.New(*salary, s.now())
	if err != nil {
		return nil, err
	}

	created.ID = uuid.New()
	if err := s.repo.CreateSalary(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to create salary: %w", err)
	}

	s.producer.Produce(events.Event{Type: events.SalaryCreated, Salary: &created})
	return &created, nil
}

func (s *SalaryService) GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error) {
	salary, err := s.repo.GetSalary(ctx, id)
	if err != nil {
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to get salary: %w", err)
		})
	}
	return salary, nil
}

func (s *SalaryService) ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", e.ErrInvalidInput, filter.Status)
	}
	if filter.SalaryMonth != "" {
		if _, err := time.Parse(models.SalaryMonthLayout, filter.SalaryMonth); err != nil {
			return nil, fmt.Errorf("%w: salary month must be YYYY-MM", e.ErrInvalidInput)
		}
	}
	salaries, err := s.repo.ListSalaries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	return salaries, nil
}

// UpdateSalary applies an administrative edit and re-derives the status.
func (s *SalaryService) UpdateSalary(ctx context.Context, update *models.SalaryUpdate) (*models.Salary, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid salary ID", e.ErrInvalidInput)
	}

	updated, err := s.repo.ModifySalary(ctx, update.ID, func(salary models.Salary) (models.Salary, error) {
		update.Apply(&salary)
		if err := payroll.Validate(salary); err != nil {
			return models.Salary{}, err
		}
		return payroll.RecomputeStatus(salary), nil
	})
	if err != nil {
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to update salary: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.SalaryUpdated, Salary: updated})
	return updated, nil
}

func (s *SalaryService) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	salary, err := s.repo.GetSalary(ctx, id)
	if err != nil {
		return passThrough(err, func(err error) error {
			return fmt.Errorf("failed to get salary for deletion: %w", err)
		})
	}

	if err := s.repo.DeleteSalary(ctx, id); err != nil {
		return passThrough(err, func(err error) error {
			return fmt.Errorf("failed to delete salary: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.SalaryDeleted, Salary: salary})
	return nil
}

// PaySalary adds amount to the salary's paid total.
func (s *SalaryService) PaySalary(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Salary, error) {
	updated, err := s.repo.ModifySalary(ctx, id, func(salary models.Salary) (models.Salary, error) {
		return payroll.ApplyPayment(salary, amount)
	})
	s.metrics.Payment(resultOf(err), amount.InexactFloat64())
	if err != nil {
		s.logger.Info("Payment rejected",
			zap.String("salary_id", id.String()),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return nil, passThrough(err, func(err error) error {
			return fmt.Errorf("failed to pay salary: %w", err)
		})
	}

	s.producer.Produce(events.Event{Type: events.SalaryPaid, Salary: updated})
	return updated, nil
}
