// Package farmv1 defines the messages, gRPC service descriptors and HTTP
// gateway routes of the farm API. Messages travel as JSON on both surfaces.
//
// The messages are plain Go structs, not protobuf messages. On the gRPC
// surface they are carried by the codec registered under CodecName, so
// requests must use the content-subtype "json" (content-type
// "application/grpc+json"). The clients in this package set it on every
// call. Other clients must pass grpc.CallContentSubtype(CodecName); a
// client using the default proto codec fails to marshal the request. The
// standard health service keeps the proto codec.
package farmv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is the wire form of an inventory item. Value and Status are
// output only.
type Material struct {
	Id           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit,omitempty"`
	Category     string          `json:"category,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	CurrentStock int64           `json:"currentStock"`
	MinStock     int64           `json:"minStock"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Value        decimal.Decimal `json:"value"`
	Status       string          `json:"status,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// MaterialPatch carries a partial material edit. Absent fields are left as they are.
type MaterialPatch struct {
	Name         *string          `json:"name,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	CurrentStock *int64           `json:"currentStock,omitempty"`
	MinStock     *int64           `json:"minStock,omitempty"`
	PricePerUnit *decimal.Decimal `json:"pricePerUnit,omitempty"`
}

type StockMovement struct {
	Id          string    `json:"id"`
	MaterialId  string    `json:"materialId"`
	Kind        string    `json:"kind"`
	Quantity    int64     `json:"quantity"`
	StockBefore int64     `json:"stockBefore"`
	StockAfter  int64     `json:"stockAfter"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateMaterialRequest struct {
	Material *Material `json:"material"`
}

type GetMaterialRequest struct {
	Id string `json:"id"`
}

// ListMaterialsRequest filters by stock status and category. An empty
// request lists everything.
type ListMaterialsRequest struct {
	Status   []string `json:"status,omitempty"`
	Category string   `json:"category,omitempty"`
}

type ListMaterialsResponse struct {
	Materials []*Material `json:"materials"`
}

type UpdateMaterialRequest struct {
	Id       string         `json:"id"`
	Material *MaterialPatch `json:"material"`
}

type DeleteMaterialRequest struct {
	Id string `json:"id"`
}

type WithdrawStockRequest struct {
	Id       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Purpose  string `json:"purpose,omitempty"`
}

type RestockMaterialRequest struct {
	Id       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

type ListStockMovementsRequest struct {
	MaterialId string `json:"materialId"`
}

type ListStockMovementsResponse struct {
	Movements []*StockMovement `json:"movements"`
}

type MaterialResponse struct {
	Material *Material `json:"material"`
}

// StockChangeResponse returns the material after a stock change together
// with the ledger entry that recorded it.
type StockChangeResponse struct {
	Material *Material      `json:"material"`
	Movement *StockMovement `json:"movement,omitempty"`
}

// Salary is the wire form of a pay period record. Status is output only.
type Salary struct {
	Id          string          `json:"id,omitempty"`
	StaffName   string          `json:"staffName"`
	SalaryMonth string          `json:"salaryMonth,omitempty"`
	BaseSalary  decimal.Decimal `json:"baseSalary"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Status      string          `json:"status,omitempty"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type SalaryPatch struct {
	StaffName   *string          `json:"staffName,omitempty"`
	SalaryMonth *string          `json:"salaryMonth,omitempty"`
	BaseSalary  *decimal.Decimal `json:"baseSalary,omitempty"`
	PaidAmount  *decimal.Decimal `json:"paidAmount,omitempty"`
	Note        *string          `json:"note,omitempty"`
}

type CreateSalaryRequest struct {
	Salary *Salary `json:"salary"`
}

type GetSalaryRequest struct {
	Id string `json:"id"`
}

type ListSalariesRequest struct {
	Status string `json:"status,omitempty"`
	Month  string `json:"month,omitempty"`
}

type ListSalariesResponse struct {
	Salaries []*Salary `json:"salaries"`
}

type UpdateSalaryRequest struct {
	Id     string       `json:"id"`
	Salary *SalaryPatch `json:"salary"`
}

type DeleteSalaryRequest struct {
	Id string `json:"id"`
}

type PaySalaryRequest struct {
	Id     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

type SalaryResponse struct {
	Salary *Salary `json:"salary"`
}

type DeleteResponse struct{}
