package farmv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PayrollService_CreateSalary_FullMethodName = "/farm.v1.PayrollService/CreateSalary"
	PayrollService_GetSalary_FullMethodName    = "/farm.v1.PayrollService/GetSalary"
	PayrollService_ListSalaries_FullMethodName = "/farm.v1.PayrollService/ListSalaries"
	PayrollService_UpdateSalary_FullMethodName = "/farm.v1.PayrollService/UpdateSalary"
	PayrollService_DeleteSalary_FullMethodName = "/farm.v1.PayrollService/DeleteSalary"
	PayrollService_PaySalary_FullMethodName    = "/farm.v1.PayrollService/PaySalary"
)

// PayrollServiceServer is the server API for the PayrollService service.
type PayrollServiceServer interface {
	CreateSalary(context.Context, *CreateSalaryRequest) (*SalaryResponse, error)
	GetSalary(context.Context, *GetSalaryRequest) (*SalaryResponse, error)
	ListSalaries(context.Context, *ListSalariesRequest) (*ListSalariesResponse, error)
	UpdateSalary(context.Context, *UpdateSalaryRequest) (*SalaryResponse, error)
	DeleteSalary(context.Context, *DeleteSalaryRequest) (*DeleteResponse, error)
	PaySalary(context.Context, *PaySalaryRequest) (*SalaryResponse, error)
}

// UnimplementedPayrollServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedPayrollServiceServer struct{}

func (UnimplementedPayrollServiceServer) CreateSalary(context.Context, *CreateSalaryRequest) (*SalaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSalary not implemented")
}
func (UnimplementedPayrollServiceServer) GetSalary(context.Context, *GetSalaryRequest) (*SalaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSalary not implemented")
}
func (UnimplementedPayrollServiceServer) ListSalaries(context.Context, *ListSalariesRequest) (*ListSalariesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSalaries not implemented")
}
func (UnimplementedPayrollServiceServer) UpdateSalary(context.Context, *UpdateSalaryRequest) (*SalaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSalary not implemented")
}
func (UnimplementedPayrollServiceServer) DeleteSalary(context.Context, *DeleteSalaryRequest) (*DeleteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSalary not implemented")
}
func (UnimplementedPayrollServiceServer) PaySalary(context.Context, *PaySalaryRequest) (*SalaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PaySalary not implemented")
}

func RegisterPayrollServiceServer(s grpc.ServiceRegistrar, srv PayrollServiceServer) {
	s.RegisterService(&PayrollService_ServiceDesc, srv)
}

// PayrollService_ServiceDesc is the grpc.ServiceDesc for PayrollService.
var PayrollService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "farm.v1.PayrollService",
	HandlerType: (*PayrollServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSalary",
			Handler:    unary(PayrollService_CreateSalary_FullMethodName, PayrollServiceServer.CreateSalary),
		},
		{
			MethodName: "GetSalary",
			Handler:    unary(PayrollService_GetSalary_FullMethodName, PayrollServiceServer.GetSalary),
		},
		{
			MethodName: "ListSalaries",
			Handler:    unary(PayrollService_ListSalaries_FullMethodName, PayrollServiceServer.ListSalaries),
		},
		{
			MethodName: "UpdateSalary",
			Handler:    unary(PayrollService_UpdateSalary_FullMethodName, PayrollServiceServer.UpdateSalary),
		},
		{
			MethodName: "DeleteSalary",
			Handler:    unary(PayrollService_DeleteSalary_FullMethodName, PayrollServiceServer.DeleteSalary),
		},
		{
			MethodName: "PaySalary",
			Handler:    unary(PayrollService_PaySalary_FullMethodName, PayrollServiceServer.PaySalary),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// PayrollServiceClient is the client API for the PayrollService service.
type PayrollServiceClient interface {
	CreateSalary(ctx context.Context, in *CreateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error)
	GetSalary(ctx context.Context, in *GetSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error)
	ListSalaries(ctx context.Context, in *ListSalariesRequest, opts ...grpc.CallOption) (*ListSalariesResponse, error)
	UpdateSalary(ctx context.Context, in *UpdateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error)
	DeleteSalary(ctx context.Context, in *DeleteSalaryRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	PaySalary(ctx context.Context, in *PaySalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error)
}

type payrollServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPayrollServiceClient returns a client that calls the service with the JSON codec.
func NewPayrollServiceClient(cc grpc.ClientConnInterface) PayrollServiceClient {
	return &payrollServiceClient{cc}
}

func (c *payrollServiceClient) CreateSalary(ctx context.Context, in *CreateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, PayrollService_CreateSalary_FullMethodName, in, opts)
}

func (c *payrollServiceClient) GetSalary(ctx context.Context, in *GetSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, PayrollService_GetSalary_FullMethodName, in, opts)
}

func (c *payrollServiceClient) ListSalaries(ctx context.Context, in *ListSalariesRequest, opts ...grpc.CallOption) (*ListSalariesResponse, error) {
	return invoke[ListSalariesResponse](ctx, c.cc, PayrollService_ListSalaries_FullMethodName, in, opts)
}

func (c *payrollServiceClient) UpdateSalary(ctx context.Context, in *UpdateSalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, PayrollService_UpdateSalary_FullMethodName, in, opts)
}

func (c *payrollServiceClient) DeleteSalary(ctx context.Context, in *DeleteSalaryRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	return invoke[DeleteResponse](ctx, c.cc, PayrollService_DeleteSalary_FullMethodName, in, opts)
}

func (c *payrollServiceClient) PaySalary(ctx context.Context, in *PaySalaryRequest, opts ...grpc.CallOption) (*SalaryResponse, error) {
	return invoke[SalaryResponse](ctx, c.cc, PayrollService_PaySalary_FullMethodName, in, opts)
}
