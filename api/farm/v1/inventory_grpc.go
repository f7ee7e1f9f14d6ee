package farmv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryService_CreateMaterial_FullMethodName     = "/farm.v1.InventoryService/CreateMaterial"
	InventoryService_GetMaterial_FullMethodName        = "/farm.v1.InventoryService/GetMaterial"
	InventoryService_ListMaterials_FullMethodName      = "/farm.v1.InventoryService/ListMaterials"
	InventoryService_UpdateMaterial_FullMethodName     = "/farm.v1.InventoryService/UpdateMaterial"
	InventoryService_DeleteMaterial_FullMethodName     = "/farm.v1.InventoryService/DeleteMaterial"
	InventoryService_WithdrawStock_FullMethodName      = "/farm.v1.InventoryService/WithdrawStock"
	InventoryService_RestockMaterial_FullMethodName    = "/farm.v1.InventoryService/RestockMaterial"
	InventoryService_ListStockMovements_FullMethodName = "/farm.v1.InventoryService/ListStockMovements"
)

// InventoryServiceServer is the server API for the InventoryService service.
type InventoryServiceServer interface {
	CreateMaterial(context.Context, *CreateMaterialRequest) (*MaterialResponse, error)
	GetMaterial(context.Context, *GetMaterialRequest) (*MaterialResponse, error)
	ListMaterials(context.Context, *ListMaterialsRequest) (*ListMaterialsResponse, error)
	UpdateMaterial(context.Context, *UpdateMaterialRequest) (*MaterialResponse, error)
	DeleteMaterial(context.Context, *DeleteMaterialRequest) (*DeleteResponse, error)
	WithdrawStock(context.Context, *WithdrawStockRequest) (*StockChangeResponse, error)
	RestockMaterial(context.Context, *RestockMaterialRequest) (*StockChangeResponse, error)
	ListStockMovements(context.Context, *ListStockMovementsRequest) (*ListStockMovementsResponse, error)
}

// UnimplementedInventoryServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) CreateMaterial(context.Context, *CreateMaterialRequest) (*MaterialResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMaterial not implemented")
}
func (UnimplementedInventoryServiceServer) GetMaterial(context.Context, *GetMaterialRequest) (*MaterialResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMaterial not implemented")
}
func (UnimplementedInventoryServiceServer) ListMaterials(context.Context, *ListMaterialsRequest) (*ListMaterialsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMaterials not implemented")
}
func (UnimplementedInventoryServiceServer) UpdateMaterial(context.Context, *UpdateMaterialRequest) (*MaterialResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMaterial not implemented")
}
func (UnimplementedInventoryServiceServer) DeleteMaterial(context.Context, *DeleteMaterialRequest) (*DeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMaterial not implemented")
}
func (UnimplementedInventoryServiceServer) WithdrawStock(context.Context, *WithdrawStockRequest) (*StockChangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WithdrawStock not implemented")
}
func (UnimplementedInventoryServiceServer) RestockMaterial(context.Context, *RestockMaterialRequest) (*StockChangeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RestockMaterial not implemented")
}
func (UnimplementedInventoryServiceServer) ListStockMovements(context.Context, *ListStockMovementsRequest) (*ListStockMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStockMovements not implemented")
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService.
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "farm.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMaterial",
			Handler:    unary(InventoryService_CreateMaterial_FullMethodName, InventoryServiceServer.CreateMaterial),
		},
		{
			MethodName: "GetMaterial",
			Handler:    unary(InventoryService_GetMaterial_FullMethodName, InventoryServiceServer.GetMaterial),
		},
		{
			MethodName: "ListMaterials",
			Handler:    unary(InventoryService_ListMaterials_FullMethodName, InventoryServiceServer.ListMaterials),
		},
		{
			MethodName: "UpdateMaterial",
			Handler:    unary(InventoryService_UpdateMaterial_FullMethodName, InventoryServiceServer.UpdateMaterial),
		},
		{
			MethodName: "DeleteMaterial",
			Handler:    unary(InventoryService_DeleteMaterial_FullMethodName, InventoryServiceServer.DeleteMaterial),
		},
		{
			MethodName: "WithdrawStock",
			Handler:    unary(InventoryService_WithdrawStock_FullMethodName, InventoryServiceServer.WithdrawStock),
		},
		{
			MethodName: "RestockMaterial",
			Handler:    unary(InventoryService_RestockMaterial_FullMethodName, InventoryServiceServer.RestockMaterial),
		},
		{
			MethodName: "ListStockMovements",
			Handler:    unary(InventoryService_ListStockMovements_FullMethodName, InventoryServiceServer.ListStockMovements),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// InventoryServiceClient is the client API for the InventoryService service.
type InventoryServiceClient interface {
	CreateMaterial(ctx context.Context, in *CreateMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error)
	GetMaterial(ctx context.Context, in *GetMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error)
	ListMaterials(ctx context.Context, in *ListMaterialsRequest, opts ...grpc.CallOption) (*ListMaterialsResponse, error)
	UpdateMaterial(ctx context.Context, in *UpdateMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error)
	DeleteMaterial(ctx context.Context, in *DeleteMaterialRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	WithdrawStock(ctx context.Context, in *WithdrawStockRequest, opts ...grpc.CallOption) (*StockChangeResponse, error)
	RestockMaterial(ctx context.Context, in *RestockMaterialRequest, opts ...grpc.CallOption) (*StockChangeResponse, error)
	ListStockMovements(ctx context.Context, in *ListStockMovementsRequest, opts ...grpc.CallOption) (*ListStockMovementsResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInventoryServiceClient returns a client that calls the service with the JSON codec.
func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) CreateMaterial(ctx context.Context, in *CreateMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error) {
	return invoke[MaterialResponse](ctx, c.cc, InventoryService_CreateMaterial_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) GetMaterial(ctx context.Context, in *GetMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error) {
	return invoke[MaterialResponse](ctx, c.cc, InventoryService_GetMaterial_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) ListMaterials(ctx context.Context, in *ListMaterialsRequest, opts ...grpc.CallOption) (*ListMaterialsResponse, error) {
	return invoke[ListMaterialsResponse](ctx, c.cc, InventoryService_ListMaterials_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) UpdateMaterial(ctx context.Context, in *UpdateMaterialRequest, opts ...grpc.CallOption) (*MaterialResponse, error) {
	return invoke[MaterialResponse](ctx, c.cc, InventoryService_UpdateMaterial_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) DeleteMaterial(ctx context.Context, in *DeleteMaterialRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	return invoke[DeleteResponse](ctx, c.cc, InventoryService_DeleteMaterial_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) WithdrawStock(ctx context.Context, in *WithdrawStockRequest, opts ...grpc.CallOption) (*StockChangeResponse, error) {
	return invoke[StockChangeResponse](ctx, c.cc, InventoryService_WithdrawStock_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) RestockMaterial(ctx context.Context, in *RestockMaterialRequest, opts ...grpc.CallOption) (*StockChangeResponse, error) {
	return invoke[StockChangeResponse](ctx, c.cc, InventoryService_RestockMaterial_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) ListStockMovements(ctx context.Context, in *ListStockMovementsRequest, opts ...grpc.CallOption) (*ListStockMovementsResponse, error) {
	return invoke[ListStockMovementsResponse](ctx, c.cc, InventoryService_ListStockMovements_FullMethodName, in, opts)
}
