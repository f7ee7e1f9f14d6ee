// Package handlers provides the gRPC and HTTP servers of the farm service,
// bridging the transport layer and the business logic and translating
// between API messages and domain models.
package handlers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	pb "github.com/gartstein/farm/api/farm/v1"
	"github.com/gartstein/farm/internal/farm/auth"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server holds references to both a gRPC server and an HTTP server.
type Server struct {
	grpcServer   *grpc.Server
	httpServer   *http.Server
	health       *health.Server
	logger       *zap.Logger
	grpcEndpoint string
	httpEndpoint string
}

// GatewayOptions configures the HTTP surface.
type GatewayOptions struct {
	// JWTSecret verifies bearer tokens on mutating routes.
	JWTSecret string
	// Metrics, when set, is served on /metrics.
	Metrics http.Handler
}

// NewServer constructs a Server with separate endpoints for gRPC and HTTP.
// The standard gRPC health service is always registered.
func NewServer(
	grpcPort int,
	httpPort int,
	logger *zap.Logger,
	grpcOpts ...grpc.ServerOption,
) *Server {
	s := &Server{
		grpcServer:   grpc.NewServer(grpcOpts...),
		httpServer:   &http.Server{ReadHeaderTimeout: 10 * time.Second},
		health:       health.NewServer(),
		logger:       logger,
		grpcEndpoint: fmt.Sprintf(":%d", grpcPort),
		httpEndpoint: fmt.Sprintf(":%d", httpPort),
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	return s
}

// RegisterGRPCHandlers registers the inventory and payroll services.
func (s *Server) RegisterGRPCHandlers(inventory *InventoryHandler, payroll *PayrollHandler) {
	pb.RegisterInventoryServiceServer(s.grpcServer, inventory)
	pb.RegisterPayrollServiceServer(s.grpcServer, payroll)
	s.health.SetServingStatus(pb.InventoryService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.PayrollService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// RegisterHTTPGateway sets up the HTTP/JSON routes, the report downloads,
// the health probe and optionally the metrics endpoint.
func (s *Server) RegisterHTTPGateway(ctx context.Context, inventory *InventoryHandler, payroll *PayrollHandler, opts GatewayOptions) error {
	mux := runtime.NewServeMux()
	if err := pb.RegisterInventoryServiceHandlerServer(ctx, mux, inventory); err != nil {
		return err
	}
	if err := pb.RegisterPayrollServiceHandlerServer(ctx, mux, payroll); err != nil {
		return err
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/reports/inventory", inventoryReport(mux, inventory.service, s.logger)); err != nil {
		return err
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/reports/payroll", payrollReport(mux, payroll.service, s.logger)); err != nil {
		return err
	}

	root := http.NewServeMux()
	root.Handle("/", auth.HTTPMiddleware(mux, opts.JWTSecret))
	root.HandleFunc("/healthz", s.healthz)
	if opts.Metrics != nil {
		root.Handle("/metrics", opts.Metrics)
	}

	s.httpServer.Handler = root
	s.httpServer.Addr = s.httpEndpoint
	return nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	resp, err := s.health.Check(r.Context(), &healthpb.HealthCheckRequest{})
	code := http.StatusOK
	state := "UNKNOWN"
	if err == nil {
		state = resp.GetStatus().String()
	}
	if state != healthpb.HealthCheckResponse_SERVING.String() {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = jsoniter.NewEncoder(w).Encode(map[string]string{"status": state})
}

// Start runs the gRPC and HTTP servers concurrently, returning on the first error.
func (s *Server) Start() error {
	var wg sync.WaitGroup
	wg.Add(2)
	errChan := make(chan error, 2)

	go func() {
		defer wg.Done()
		s.logger.Info("Starting gRPC server", zap.String("endpoint", s.grpcEndpoint))
		lis, err := net.Listen("tcp", s.grpcEndpoint)
		if err != nil {
			errChan <- fmt.Errorf("gRPC listen error: %w", err)
			return
		}
		if err := s.grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC serve error: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		s.logger.Info("Starting HTTP server", zap.String("endpoint", s.httpEndpoint))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP serve error: %w", err)
		}
	}()

	go func() {
		wg.Wait()
		close(errChan)
	}()

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}

// Stop marks the services as not serving and gracefully shuts down both servers.
func (s *Server) Stop() {
	s.logger.Info("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Servers stopped")
}
