package handlers

import (
	"errors"

	pb "github.com/gartstein/farm/api/farm/v1"
	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// parseID parses a UUID request field, naming the field in the error.
func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s ID", what)
	}
	return id, nil
}

// materialToModel converts a wire Material into a domain Material. Output-only
// fields are ignored.
func materialToModel(m *pb.Material) *models.Material {
	return &models.Material{
		Name:         m.Name,
		Unit:         m.Unit,
		Category:     m.Category,
		Supplier:     m.Supplier,
		CurrentStock: m.CurrentStock,
		MinStock:     m.MinStock,
		PricePerUnit: m.PricePerUnit,
	}
}

func patchToMaterialUpdate(id uuid.UUID, p *pb.MaterialPatch) *models.MaterialUpdate {
	return &models.MaterialUpdate{
		ID:           id,
		Name:         p.Name,
		Unit:         p.Unit,
		Category:     p.Category,
		Supplier:     p.Supplier,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		PricePerUnit: p.PricePerUnit,
	}
}

func materialToProto(m *models.Material) *pb.Material {
	return &pb.Material{
		Id:           m.ID.String(),
		Name:         m.Name,
		Unit:         m.Unit,
		Category:     m.Category,
		Supplier:     m.Supplier,
		CurrentStock: m.CurrentStock,
		MinStock:     m.MinStock,
		PricePerUnit: m.PricePerUnit,
		Value:        m.Value,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func movementToProto(m *models.StockMovement) *pb.StockMovement {
	if m == nil {
		return nil
	}
	return &pb.StockMovement{
		Id:          m.ID.String(),
		MaterialId:  m.MaterialID.String(),
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}

func salaryToModel(s *pb.Salary) *models.Salary {
	return &models.Salary{
		StaffName:   s.StaffName,
		SalaryMonth: s.SalaryMonth,
		BaseSalary:  s.BaseSalary,
		PaidAmount:  s.PaidAmount,
		Note:        s.Note,
	}
}

func patchToSalaryUpdate(id uuid.UUID, p *pb.SalaryPatch) *models.SalaryUpdate {
	return &models.SalaryUpdate{
		ID:          id,
		StaffName:   p.StaffName,
		SalaryMonth: p.SalaryMonth,
		BaseSalary:  p.BaseSalary,
		PaidAmount:  p.PaidAmount,
		Note:        p.Note,
	}
}

func salaryToProto(s *models.Salary) *pb.Salary {
	return &pb.Salary{
		Id:          s.ID.String(),
		StaffName:   s.StaffName,
		SalaryMonth: s.SalaryMonth,
		BaseSalary:  s.BaseSalary,
		PaidAmount:  s.PaidAmount,
		Status:      string(s.Status),
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// mapServiceError maps domain or repository errors to gRPC status codes.
// The HTTP gateway derives its status codes from these.
func mapServiceError(logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrDuplicateName):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, e.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		logger.Error("Internal server error", zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}
}
