package handlers

import (
	"context"

	pb "github.com/gartstein/farm/api/farm/v1"
	"github.com/gartstein/farm/internal/farm/auth"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MaterialController defines the inventory business logic the gRPC and
// HTTP handlers invoke.
type MaterialController interface {
	CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error)
	ListMaterials(ctx context.Context, filter models.MaterialFilter) ([]*models.Material, error)
	UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
	WithdrawStock(ctx context.Context, id uuid.UUID, quantity int64, purpose string) (*models.Material, *models.StockMovement, error)
	RestockMaterial(ctx context.Context, id uuid.UUID, quantity int64, note string) (*models.Material, *models.StockMovement, error)
	ListMovements(ctx context.Context, materialID uuid.UUID) ([]*models.StockMovement, error)
}

// InventoryHandler serves farm.v1.InventoryService on top of a MaterialController.
type InventoryHandler struct {
	pb.UnimplementedInventoryServiceServer
	service MaterialController
	logger  *zap.Logger
}

// NewInventoryHandler constructs a new InventoryHandler with the given service and logger.
func NewInventoryHandler(service MaterialController, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.Named("inventory_handler"),
	}
}

func (h *InventoryHandler) CreateMaterial(ctx context.Context, req *pb.CreateMaterialRequest) (*pb.MaterialResponse, error) {
	if req.Material == nil {
		return nil, status.Error(codes.InvalidArgument, "material data required")
	}

	created, err := h.service.CreateMaterial(ctx, materialToModel(req.Material))
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.MaterialResponse{Material: materialToProto(created)}, nil
}

func (h *InventoryHandler) GetMaterial(ctx context.Context, req *pb.GetMaterialRequest) (*pb.MaterialResponse, error) {
	id, err := parseID(req.Id, "material")
	if err != nil {
		return nil, err
	}

	material, err := h.service.GetMaterial(ctx, id)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.MaterialResponse{Material: materialToProto(material)}, nil
}

// ListMaterials lists materials, optionally narrowed to some stock tiers.
// Asking for low and critical gives the restocking alert list.
func (h *InventoryHandler) ListMaterials(ctx context.Context, req *pb.ListMaterialsRequest) (*pb.ListMaterialsResponse, error) {
	filter := models.MaterialFilter{Category: req.Category}
	for _, s := range req.Status {
		filter.Statuses = append(filter.Statuses, models.StockStatus(s))
	}

	materials, err := h.service.ListMaterials(ctx, filter)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	resp := &pb.ListMaterialsResponse{Materials: make([]*pb.Material, 0, len(materials))}
	for _, m := range materials {
		resp.Materials = append(resp.Materials, materialToProto(m))
	}
	return resp, nil
}

func (h *InventoryHandler) UpdateMaterial(ctx context.Context, req *pb.UpdateMaterialRequest) (*pb.MaterialResponse, error) {
	id, err := parseID(req.Id, "material")
	if err != nil {
		return nil, err
	}
	if req.Material == nil {
		return nil, status.Error(codes.InvalidArgument, "update data required")
	}

	updated, err := h.service.UpdateMaterial(ctx, patchToMaterialUpdate(id, req.Material))
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.MaterialResponse{Material: materialToProto(updated)}, nil
}

func (h *InventoryHandler) DeleteMaterial(ctx context.Context, req *pb.DeleteMaterialRequest) (*pb.DeleteResponse, error) {
	id, err := parseID(req.Id, "material")
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteMaterial(ctx, id); err != nil {
		return nil, mapServiceError(h.logger, err)
	}
	return &pb.DeleteResponse{}, nil
}

// WithdrawStock takes stock out of a material. A withdrawal larger than the
// stock on hand fails with FailedPrecondition and changes nothing.
func (h *InventoryHandler) WithdrawStock(ctx context.Context, req *pb.WithdrawStockRequest) (*pb.StockChangeResponse, error) {
	id, err := parseID(req.Id, "material")
	if err != nil {
		return nil, err
	}

	material, movement, err := h.service.WithdrawStock(ctx, id, req.Quantity, req.Purpose)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	h.logger.Info("Stock withdrawn",
		zap.String("material_id", material.ID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.String("by", caller(ctx)),
	)
	return &pb.StockChangeResponse{
		Material: materialToProto(material),
		Movement: movementToProto(movement),
	}, nil
}

func (h *InventoryHandler) RestockMaterial(ctx context.Context, req *pb.RestockMaterialRequest) (*pb.StockChangeResponse, error) {
	id, err := parseID(req.Id, "material")
	if err != nil {
		return nil, err
	}

	material, movement, err := h.service.RestockMaterial(ctx, id, req.Quantity, req.Note)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	h.logger.Info("Stock replenished",
		zap.String("material_id", material.ID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.String("by", caller(ctx)),
	)
	return &pb.StockChangeResponse{
		Material: materialToProto(material),
		Movement: movementToProto(movement),
	}, nil
}

func (h *InventoryHandler) ListStockMovements(ctx context.Context, req *pb.ListStockMovementsRequest) (*pb.ListStockMovementsResponse, error) {
	id, err := parseID(req.MaterialId, "material")
	if err != nil {
		return nil, err
	}

	movements, err := h.service.ListMovements(ctx, id)
	if err != nil {
		return nil, mapServiceError(h.logger, err)
	}

	resp := &pb.ListStockMovementsResponse{Movements: make([]*pb.StockMovement, 0, len(movements))}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, movementToProto(m))
	}
	return resp, nil
}

func caller(ctx context.Context) string {
	if sub, ok := auth.Subject(ctx); ok {
		return sub
	}
	return "anonymous"
}
