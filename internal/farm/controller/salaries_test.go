package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/events"
	"github.com/gartstein/farm/internal/farm/metrics"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/gartstein/farm/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newSalaryService(t *testing.T, repo *MockSalaryRepository, producer *MockProducer) *SalaryService {
	t.Helper()
	s := NewSalaryService(repo, producer, metrics.NewNop(), zaptest.NewLogger(t))
	s.now = func() time.Time { return time.Date(2024, time.May, 17, 9, 0, 0, 0, time.UTC) }
	return s
}

func salaryRecord(base, paid string) *models.Salary {
	return &models.Salary{
		ID:          uuid.New(),
		StaffName:   "Ana",
		SalaryMonth: "2024-05",
		BaseSalary:  decimal.RequireFromString(base),
		PaidAmount:  decimal.RequireFromString(paid),
		Status:      models.PaymentUnpaid,
	}
}

func TestSalaryService_CreateSalary(t *testing.T) {
	tests := []struct {
		name           string
		input          *models.Salary
		createErr      error
		expectedError  error
		expectedStatus models.PaymentStatus
		expectedMonth  string
	}{
		{
			name: "defaults month and paid amount",
			input: &models.Salary{
				StaffName:  "Ana",
				BaseSalary: decimal.RequireFromString("1000"),
			},
			expectedStatus: models.PaymentUnpaid,
			expectedMonth:  "2024-05",
		},
		{
			name: "status is derived, not taken from input",
			input: &models.Salary{
				StaffName:   "Ben",
				SalaryMonth: "2024-04",
				BaseSalary:  decimal.RequireFromString("1000"),
				PaidAmount:  decimal.RequireFromString("400"),
				Status:      models.PaymentPaid,
			},
			expectedStatus: models.PaymentPending,
			expectedMonth:  "2024-04",
		},
		{
			name: "zero base salary",
			input: &models.Salary{
				StaffName:  "Ana",
				BaseSalary: decimal.Zero,
			},
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "repository error",
			input: &models.Salary{
				StaffName:  "Ana",
				BaseSalary: decimal.RequireFromString("1000"),
			},
			createErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockSalaryRepository{
				createSalary: func(_ context.Context, _ *models.Salary) error {
					return tt.createErr
				},
			}
			mockProducer := &MockProducer{}
			service := newSalaryService(t, mockRepo, mockProducer)

			result, err := service.CreateSalary(context.Background(), tt.input)

			if tt.expectedError != nil || tt.createErr != nil {
				require.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Empty(t, mockProducer.types())
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, result.ID)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedMonth, result.SalaryMonth)
			assert.Equal(t, []events.EventType{events.SalaryCreated}, mockProducer.types())
		})
	}
}

func TestSalaryService_PaySalary(t *testing.T) {
	tests := []struct {
		name           string
		base           string
		paid           string
		amount         string
		expectedError  error
		expectedPaid   string
		expectedStatus models.PaymentStatus
	}{
		{
			name:           "partial payment",
			base:           "1000",
			paid:           "0",
			amount:         "400",
			expectedPaid:   "400",
			expectedStatus: models.PaymentPending,
		},
		{
			name:           "completes the salary",
			base:           "1000",
			paid:           "400",
			amount:         "600",
			expectedPaid:   "1000",
			expectedStatus: models.PaymentPaid,
		},
		{
			name:           "overpayment is kept",
			base:           "1000",
			paid:           "900",
			amount:         "300",
			expectedPaid:   "1200",
			expectedStatus: models.PaymentPaid,
		},
		{
			name:          "zero amount",
			base:          "1000",
			paid:          "0",
			amount:        "0",
			expectedError: e.ErrInvalidInput,
			expectedPaid:  "0",
		},
		{
			name:          "negative amount",
			base:          "1000",
			paid:          "100",
			amount:        "-50",
			expectedError: e.ErrInvalidInput,
			expectedPaid:  "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := salaryRecord(tt.base, tt.paid)
			mockRepo := &MockSalaryRepository{modifySalary: storedSalary(stored)}
			mockProducer := &MockProducer{}
			service := newSalaryService(t, mockRepo, mockProducer)

			result, err := service.PaySalary(context.Background(), stored.ID, decimal.RequireFromString(tt.amount))

			assert.True(t, stored.PaidAmount.Equal(decimal.RequireFromString(tt.expectedPaid)),
				"stored paid amount = %s", stored.PaidAmount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, mockProducer.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, []events.EventType{events.SalaryPaid}, mockProducer.types())
		})
	}
}

func TestSalaryService_PaySalary_NotFound(t *testing.T) {
	stored := salaryRecord("1000", "0")
	mockRepo := &MockSalaryRepository{modifySalary: storedSalary(stored)}
	service := newSalaryService(t, mockRepo, &MockProducer{})

	_, err := service.PaySalary(context.Background(), uuid.New(), decimal.RequireFromString("10"))

	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestSalaryService_UpdateSalary(t *testing.T) {
	tests := []struct {
		name           string
		update         func(id uuid.UUID) *models.SalaryUpdate
		expectedError  error
		expectedStatus models.PaymentStatus
	}{
		{
			name: "overwrite paid amount",
			update: func(id uuid.UUID) *models.SalaryUpdate {
				return &models.SalaryUpdate{ID: id, PaidAmount: utils.Ptr(decimal.RequireFromString("1000"))}
			},
			expectedStatus: models.PaymentPaid,
		},
		{
			name: "raising base reopens a paid salary",
			update: func(id uuid.UUID) *models.SalaryUpdate {
				return &models.SalaryUpdate{ID: id, BaseSalary: utils.Ptr(decimal.RequireFromString("1500"))}
			},
			expectedStatus: models.PaymentPending,
		},
		{
			name: "bad month",
			update: func(id uuid.UUID) *models.SalaryUpdate {
				return &models.SalaryUpdate{ID: id, SalaryMonth: utils.Ptr("May 2024")}
			},
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "negative paid amount",
			update: func(id uuid.UUID) *models.SalaryUpdate {
				return &models.SalaryUpdate{ID: id, PaidAmount: utils.Ptr(decimal.RequireFromString("-1"))}
			},
			expectedError: e.ErrInvalidInput,
		},
		{
			name: "missing id",
			update: func(_ uuid.UUID) *models.SalaryUpdate {
				return &models.SalaryUpdate{Note: utils.Ptr("x")}
			},
			expectedError: e.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := salaryRecord("1000", "1000")
			stored.Status = models.PaymentPaid
			mockRepo := &MockSalaryRepository{modifySalary: storedSalary(stored)}
			mockProducer := &MockProducer{}
			service := newSalaryService(t, mockRepo, mockProducer)

			result, err := service.UpdateSalary(context.Background(), tt.update(stored.ID))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, models.PaymentPaid, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, []events.EventType{events.SalaryUpdated}, mockProducer.types())
		})
	}
}

func TestSalaryService_ListSalaries(t *testing.T) {
	var got models.SalaryFilter
	mockRepo := &MockSalaryRepository{
		listSalaries: func(_ context.Context, f models.SalaryFilter) ([]*models.Salary, error) {
			got = f
			return nil, nil
		},
	}
	service := newSalaryService(t, mockRepo, &MockProducer{})

	filter := models.SalaryFilter{Status: models.PaymentPending, SalaryMonth: "2024-05"}
	_, err := service.ListSalaries(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, got)

	_, err = service.ListSalaries(context.Background(), models.SalaryFilter{Status: "late"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = service.ListSalaries(context.Background(), models.SalaryFilter{SalaryMonth: "2024/05"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestSalaryService_GetAndDeleteSalary(t *testing.T) {
	stored := salaryRecord("1000", "0")
	deleted := false
	mockRepo := &MockSalaryRepository{
		getSalary: func(_ context.Context, id uuid.UUID) (*models.Salary, error) {
			if id != stored.ID {
				return nil, e.ErrNotFound
			}
			return stored, nil
		},
		deleteSalary: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	mockProducer := &MockProducer{}
	service := newSalaryService(t, mockRepo, mockProducer)

	got, err := service.GetSalary(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)

	_, err = service.GetSalary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)

	require.NoError(t, service.DeleteSalary(context.Background(), stored.ID))
	assert.True(t, deleted)
	assert.Equal(t, []events.EventType{events.SalaryDeleted}, mockProducer.types())
}
