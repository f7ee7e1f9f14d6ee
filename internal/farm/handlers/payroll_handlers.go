package handlers

import (
	"context"

	pb "github.com/gartstein/farm/api/farm/v1"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SalaryController defines the payroll business logic the gRPC and HTTP
// handlers invoke.
type SalaryController interface {
	CreateSalary(ctx context.Context, salary *models.Salary) (*models.Salary, error)
	GetSalary(ctx context.Context, id uuid.UUID) (*models.Salary, error)
	ListSalaries(ctx context.Context, filter models.SalaryFilter) ([]*models.Salary, error)
	UpdateSalary(ctx context.Context, update *models.SalaryUpdate) (*models.Salary, error)
	DeleteSalary(ctx context.Context, id uuid.UUID) error
	PaySalary(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Salary, error)
}

// PayrollHandler serves farm.v1.PayrollService on top of a SalaryController.
type PayrollHandler struct {
	pb.UnimplementedPayrollServiceServer
	service SalaryController
	logger  *zap.Logger
}

func NewPayrollHandler(service SalaryController, logger *zap.Logger) *PayrollHandler {
	return &PayrollHandler{
		service: service,
		logger:  logger.Named("payroll_handler"),
	}
}

func (h *PayrollHandler) CreateSalary(ctx context.Context, req *pb.CreateSalaryRequest) (*pb.SalaryResponse, error) {
	if req.Salary == nil {
		return nil, status.Error(codes.InvalidArgument, "salary data required")
	}

	created, err := h.service.CreateSalary(ctx, salaryToModel(req.Salary))
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.SalaryResponse{Salary: salaryToProto(created)}, nil
}

func (h *PayrollHandler) GetSalary(ctx context.Context, req *pb.GetSalaryRequest) (*pb.SalaryResponse, error) {
	id, err := parseID(req.Id, "salary")
	if err != nil {
		return nil, err
	}

	salary, err := h.service.GetSalary(ctx, id)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.SalaryResponse{Salary: salaryToProto(salary)}, nil
}

func (h *PayrollHandler) ListSalaries(ctx context.Context, req *pb.ListSalariesRequest) (*pb.ListSalariesResponse, error) {
	salaries, err := h.service.ListSalaries(ctx, models.SalaryFilter{
		Status:      models.PaymentStatus(req.Status),
		SalaryMonth: req.Month,
	})
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	resp := &pb.ListSalariesResponse{Salaries: make([]*pb.Salary, 0, len(salaries))}
	for _, s := range salaries {
		resp.Salaries = append(resp.Salaries, salaryToProto(s))
	}
	return resp, nil
}

func (h *PayrollHandler) UpdateSalary(ctx context.Context, req *pb.UpdateSalaryRequest) (*pb.SalaryResponse, error) {
	id, err := parseID(req.Id, "salary")
	if err != nil {
		return nil, err
	}
	if req.Salary == nil {
		return nil, status.Error(codes.InvalidArgument, "update data required")
	}

	updated, err := h.service.UpdateSalary(ctx, patchToSalaryUpdate(id, req.Salary))
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.SalaryResponse{Salary: salaryToProto(updated)}, nil
}

func (h *PayrollHandler) DeleteSalary(ctx context.Context, req *pb.DeleteSalaryRequest) (*pb.DeleteResponse, error) {
	id, err := parseID(req.Id, "salary")
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteSalary(ctx, id); err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.DeleteResponse{}, nil
}

// PaySalary records a payment against a salary. The amount must be positive;
// paying more than the base salary is accepted.
func (h *PayrollHandler) PaySalary(ctx context.Context, req *pb.PaySalaryRequest) (*pb.SalaryResponse, error) {
	id, err := parseID(req.Id, "salary")
	if err != nil {
		return nil, err
	}

	salary, err := h.service.PaySalary(ctx, id, req.Amount)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	h.logger.Info("Salary payment recorded",
		zap.String("salary_id", salary.ID.String()),
		zap.String("amount", req.Amount.String()),
		zap.String("status", string(salary.Status)),
		zap.String("by", caller(ctx)),
	)
	return &pb.SalaryResponse{Salary: salaryToProto(salary)}, nil
}
