package handlers

import (
	"context"
	"errors"
	"testing"

	pb "github.com/gartstein/farm/api/farm/v1"
	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestInventoryHandler_CreateMaterial(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("NilMaterial", func(t *testing.T) {
		handler := NewInventoryHandler(&mockMaterialController{}, logger)
		_, err := handler.CreateMaterial(context.Background(), &pb.CreateMaterialRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockCtrl := &mockMaterialController{
			createMaterialFunc: func(_ context.Context, _ *models.Material) (*models.Material, error) {
				return nil, e.ErrDuplicateName
			},
		}
		handler := NewInventoryHandler(mockCtrl, logger)
		_, err := handler.CreateMaterial(context.Background(), &pb.CreateMaterialRequest{
			Material: &pb.Material{Name: "Seeds"},
		})
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockCtrl := &mockMaterialController{
			createMaterialFunc: func(_ context.Context, m *models.Material) (*models.Material, error) {
				created := sampleMaterial(id, m.CurrentStock, m.MinStock, models.StockOK)
				created.Name = m.Name
				return created, nil
			},
		}
		handler := NewInventoryHandler(mockCtrl, logger)
		resp, err := handler.CreateMaterial(context.Background(), &pb.CreateMaterialRequest{
			Material: &pb.Material{Name: "Seeds", CurrentStock: 8, MinStock: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, id.String(), resp.Material.Id)
		assert.Equal(t, "Seeds", resp.Material.Name)
		assert.True(t, resp.Material.Value.Equal(decimal.RequireFromString("20")))
	})
}

func TestInventoryHandler_WithdrawStock(t *testing.T) {
	logger := zaptest.NewLogger(t)
	id := uuid.New()

	tests := []struct {
		name     string
		req      *pb.WithdrawStockRequest
		svcErr   error
		wantCode codes.Code
	}{
		{
			name:     "invalid id",
			req:      &pb.WithdrawStockRequest{Id: "not-a-uuid", Quantity: 1},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "insufficient stock",
			req:      &pb.WithdrawStockRequest{Id: id.String(), Quantity: 12},
			svcErr:   e.ErrInsufficientStock,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "non-positive quantity",
			req:      &pb.WithdrawStockRequest{Id: id.String(), Quantity: 0},
			svcErr:   e.ErrInvalidInput,
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "unknown material",
			req:      &pb.WithdrawStockRequest{Id: id.String(), Quantity: 1},
			svcErr:   e.ErrNotFound,
			wantCode: codes.NotFound,
		},
		{
			name:     "success",
			req:      &pb.WithdrawStockRequest{Id: id.String(), Quantity: 5, Purpose: "planting"},
			wantCode: codes.OK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQty int64
			var gotPurpose string
			mockCtrl := &mockMaterialController{
				withdrawStockFunc: func(_ context.Context, gotID uuid.UUID, qty int64, purpose string) (*models.Material, *models.StockMovement, error) {
					gotQty, gotPurpose = qty, purpose
					if tt.svcErr != nil {
						return nil, nil, tt.svcErr
					}
					return sampleMaterial(gotID, 10-qty, 5, models.StockOK), &models.StockMovement{
						ID:          uuid.New(),
						MaterialID:  gotID,
						Kind:        models.MovementWithdrawal,
						Quantity:    -qty,
						StockBefore: 10,
						StockAfter:  10 - qty,
						Note:        purpose,
					}, nil
				},
			}
			handler := NewInventoryHandler(mockCtrl, logger)

			resp, err := handler.WithdrawStock(context.Background(), tt.req)

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode != codes.OK {
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), gotQty)
			assert.Equal(t, "planting", gotPurpose)
			assert.Equal(t, int64(5), resp.Material.CurrentStock)
			assert.Equal(t, int64(-5), resp.Movement.Quantity)
		})
	}
}

func TestInventoryHandler_ListMaterials(t *testing.T) {
	var got models.MaterialFilter
	mockCtrl := &mockMaterialController{
		listMaterialsFunc: func(_ context.Context, f models.MaterialFilter) ([]*models.Material, error) {
			got = f
			return []*models.Material{
				sampleMaterial(uuid.New(), 2, 5, models.StockLow),
				sampleMaterial(uuid.New(), 0, 5, models.StockCritical),
			}, nil
		},
	}
	handler := NewInventoryHandler(mockCtrl, zaptest.NewLogger(t))

	resp, err := handler.ListMaterials(context.Background(), &pb.ListMaterialsRequest{
		Status:   []string{"low", "critical"},
		Category: "feed",
	})

	require.NoError(t, err)
	assert.Len(t, resp.Materials, 2)
	assert.Equal(t, []models.StockStatus{models.StockLow, models.StockCritical}, got.Statuses)
	assert.Equal(t, "feed", got.Category)
}

func TestInventoryHandler_UpdateAndDelete(t *testing.T) {
	logger := zaptest.NewLogger(t)
	id := uuid.New()

	t.Run("UpdateNilPatch", func(t *testing.T) {
		handler := NewInventoryHandler(&mockMaterialController{}, logger)
		_, err := handler.UpdateMaterial(context.Background(), &pb.UpdateMaterialRequest{Id: id.String()})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("UpdateSuccess", func(t *testing.T) {
		mockCtrl := &mockMaterialController{
			updateMaterialFunc: func(_ context.Context, u *models.MaterialUpdate) (*models.Material, error) {
				return sampleMaterial(u.ID, 10, *u.MinStock, models.StockLow), nil
			},
		}
		handler := NewInventoryHandler(mockCtrl, logger)
		minStock := int64(10)
		resp, err := handler.UpdateMaterial(context.Background(), &pb.UpdateMaterialRequest{
			Id:       id.String(),
			Material: &pb.MaterialPatch{MinStock: &minStock},
		})
		require.NoError(t, err)
		assert.Equal(t, "low", resp.Material.Status)
	})

	t.Run("DeleteServiceError", func(t *testing.T) {
		mockCtrl := &mockMaterialController{
			deleteMaterialFunc: func(_ context.Context, _ uuid.UUID) error {
				return errors.New("database error")
			},
		}
		handler := NewInventoryHandler(mockCtrl, logger)
		_, err := handler.DeleteMaterial(context.Background(), &pb.DeleteMaterialRequest{Id: id.String()})
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestPayrollHandler_PaySalary(t *testing.T) {
	logger := zaptest.NewLogger(t)
	id := uuid.New()

	tests := []struct {
		name       string
		req        *pb.PaySalaryRequest
		svcErr     error
		wantCode   codes.Code
		wantStatus string
	}{
		{
			name:     "invalid id",
			req:      &pb.PaySalaryRequest{Id: "", Amount: decimal.RequireFromString("10")},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "zero amount",
			req:      &pb.PaySalaryRequest{Id: id.String()},
			svcErr:   e.ErrInvalidInput,
			wantCode: codes.InvalidArgument,
		},
		{
			name:       "partial payment",
			req:        &pb.PaySalaryRequest{Id: id.String(), Amount: decimal.RequireFromString("400")},
			wantCode:   codes.OK,
			wantStatus: "pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := &mockSalaryController{
				paySalaryFunc: func(_ context.Context, gotID uuid.UUID, amount decimal.Decimal) (*models.Salary, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &models.Salary{
						ID:         gotID,
						StaffName:  "Ana",
						BaseSalary: decimal.RequireFromString("1000"),
						PaidAmount: amount,
						Status:     models.PaymentPending,
					}, nil
				},
			}
			handler := NewPayrollHandler(mockCtrl, logger)

			resp, err := handler.PaySalary(context.Background(), tt.req)

			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, tt.wantStatus, resp.Salary.Status)
				assert.True(t, resp.Salary.PaidAmount.Equal(decimal.RequireFromString("400")))
			}
		})
	}
}

func TestPayrollHandler_CreateAndList(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("NilSalary", func(t *testing.T) {
		handler := NewPayrollHandler(&mockSalaryController{}, logger)
		_, err := handler.CreateSalary(context.Background(), &pb.CreateSalaryRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("ListFilter", func(t *testing.T) {
		var got models.SalaryFilter
		mockCtrl := &mockSalaryController{
			listSalariesFunc: func(_ context.Context, f models.SalaryFilter) ([]*models.Salary, error) {
				got = f
				return []*models.Salary{{ID: uuid.New(), Status: models.PaymentPending}}, nil
			},
		}
		handler := NewPayrollHandler(mockCtrl, logger)
		resp, err := handler.ListSalaries(context.Background(), &pb.ListSalariesRequest{Status: "pending", Month: "2024-05"})
		require.NoError(t, err)
		assert.Len(t, resp.Salaries, 1)
		assert.Equal(t, models.SalaryFilter{Status: models.PaymentPending, SalaryMonth: "2024-05"}, got)
	})
}
