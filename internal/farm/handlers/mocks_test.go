package handlers

import (
	"context"

	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockMaterialController is a function-field implementation of MaterialController.
type mockMaterialController struct {
	createMaterialFunc  func(ctx context.Context, material *models.Material) (*models.Material, error)
	getMaterialFunc     func(ctx context.Context, id uuid.UUID) (*models.Material, error)
	listMaterialsFunc   func(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error)
	updateMaterialFunc  func(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error)
	deleteMaterialFunc  func(ctx context.Context, id uuid.UUID) error
	withdrawStockFunc   func(ctx context.Context, id uuid.UUID, quantity int64, purpose string) (*models.Material, *models.StockMovement, error)
	restockMaterialFunc func(ctx context.Context, id uuid.UUID, quantity int64, note string) (*models.Material, *models.StockMovement, error)
	listMovementsFunc   func(ctx context.Context, id uuid.UUID) ([]*models.StockMovement, error)
}

func (m *mockMaterialController) CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error) {
	return m.createMaterialFunc(ctx, material)
}

func (m *mockMaterialController) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	return m.getMaterialFunc(ctx, id)
}

func (m *mockMaterialController) ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error) {
	return m.listMaterialsFunc(ctx, filter)
}

func (m *mockMaterialController) UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error) {
	return m.updateMaterialFunc(ctx, update)
}

func (m *mockMaterialController) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return m.deleteMaterialFunc(ctx, id)
}

func (m *mockMaterialController) WithdrawStock(ctx context.Context, id uuid.UUID, quantity int64, purpose string) (*models.Material, *models.StockMovement, error) {
	return m.withdrawStockFunc(ctx, id, quantity, purpose)
}

func (m *mockMaterialController) RestockMaterial(ctx context.Context, id uuid.UUID, quantity int64, note string) (*models.Material, *models.StockMovement, error) {
	return m.restockMaterialFunc(ctx, id, quantity, note)
}

func (m *mockMaterialController) ListMovements(ctx context.Context, id uuid.UUID) ([]*models.StockMovement, error) {
	return m.listMovementsFunc(ctx, id)
}

// mockSalaryController is a function-field implementation of SalaryController.
type mockSalaryController struct {
	createSalaryFunc func(ctx context.Context, salary *models.Salary) (*models.Salary, error)
	getSalaryFunc    func(ctx context.Context, id uuid.UUID) (*models.Salary, error)
	listSalariesFunc func(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error)
	updateSalaryFunc func(ctx context.Context, update *models.SalaryUpdate) (*models.Salary, error)
	deleteSalaryFunc func(ctx context.Context, id uuid.UUID) error
	paySalaryFunc    func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Salary, error)
}

func (m *mockSalaryController) CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error) {
	return m.createSalaryFunc(ctx, salary)
}

func (m *mockSalaryController) GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error) {
	return m.getSalaryFunc(ctx, id)
}

func (m *mockSalaryController) ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error) {
	return m.listSalariesFunc(ctx, filter)
}

func (m *mockSalaryController) UpdateSalary(ctx context.Context, update *models.SalaryUpdate) (*models.Salary, error) {
	return m.updateSalaryFunc(ctx, update)
}

func (m *mockSalaryController) DeleteSalary(ctx context.Context, id uuid.UUID) error {
	return m.deleteSalaryFunc(ctx, id)
}

func (m *mockSalaryController) PaySalary(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Salary, error) {
	return m.paySalaryFunc(ctx, id, amount)
}

func sampleMaterial(id uuid.UUID, stock, minStock int64, status models.StockStatus) *models.Material {
	price := decimal.RequireFromString("2.5")
	return &models.Material{
		ID:           id,
		Name:         "Fertilizer",
		Unit:         "bag",
		CurrentStock: stock,
		MinStock:     minStock,
		PricePerUnit: price,
		Value:        price.Mul(decimal.NewFromInt(stock)),
		Status:       status,
	}
}
