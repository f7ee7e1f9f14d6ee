package farmv1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

// RegisterInventoryServiceHandlerServer registers the HTTP routes of
// InventoryService on mux, calling server directly in process.
func RegisterInventoryServiceHandlerServer(_ context.Context, mux *runtime.ServeMux, server InventoryServiceServer) error {
	return registerRoutes(mux, []route{
		{http.MethodPost, "/v1/materials", handle(mux, server.CreateMaterial,
			func(r *http.Request, _ map[string]string) (*CreateMaterialRequest, error) {
				req := &CreateMaterialRequest{Material: &Material{}}
				return req, decodeBody(r, req.Material)
			})},
		{http.MethodGet, "/v1/materials", handle(mux, server.ListMaterials,
			func(r *http.Request, _ map[string]string) (*ListMaterialsRequest, error) {
				q := r.URL.Query()
				return &ListMaterialsRequest{
					Status:   SplitValues(q["status"]),
					Category: q.Get("category"),
				}, nil
			})},
		{http.MethodGet, "/v1/materials/{id}", handle(mux, server.GetMaterial,
			func(_ *http.Request, params map[string]string) (*GetMaterialRequest, error) {
				return &GetMaterialRequest{Id: params["id"]}, nil
			})},
		{http.MethodPatch, "/v1/materials/{id}", handle(mux, server.UpdateMaterial,
			func(r *http.Request, params map[string]string) (*UpdateMaterialRequest, error) {
				req := &UpdateMaterialRequest{Id: params["id"], Material: &MaterialPatch{}}
				return req, decodeBody(r, req.Material)
			})},
		{http.MethodDelete, "/v1/materials/{id}", handle(mux, server.DeleteMaterial,
			func(_ *http.Request, params map[string]string) (*DeleteMaterialRequest, error) {
				return &DeleteMaterialRequest{Id: params["id"]}, nil
			})},
		{http.MethodPut, "/v1/materials/{id}/decrease-stock", handle(mux, server.WithdrawStock,
			func(r *http.Request, params map[string]string) (*WithdrawStockRequest, error) {
				req := &WithdrawStockRequest{}
				if err := decodeBody(r, req); err != nil {
					return nil, err
				}
				req.Id = params["id"]
				return req, nil
			})},
		{http.MethodPost, "/v1/materials/{id}/restock", handle(mux, server.RestockMaterial,
			func(r *http.Request, params map[string]string) (*RestockMaterialRequest, error) {
				req := &RestockMaterialRequest{}
				if err := decodeBody(r, req); err != nil {
					return nil, err
				}
				req.Id = params["id"]
				return req, nil
			})},
		{http.MethodGet, "/v1/materials/{id}/movements", handle(mux, server.ListStockMovements,
			func(_ *http.Request, params map[string]string) (*ListStockMovementsRequest, error) {
				return &ListStockMovementsRequest{MaterialId: params["id"]}, nil
			})},
	})
}

// RegisterPayrollServiceHandlerServer registers the HTTP routes of
// PayrollService on mux, calling server directly in process.
func RegisterPayrollServiceHandlerServer(_ context.Context, mux *runtime.ServeMux, server PayrollServiceServer) error {
	return registerRoutes(mux, []route{
		{http.MethodPost, "/v1/salaries", handle(mux, server.CreateSalary,
			func(r *http.Request, _ map[string]string) (*CreateSalaryRequest, error) {
				req := &CreateSalaryRequest{Salary: &Salary{}}
				return req, decodeBody(r, req.Salary)
			})},
		{http.MethodGet, "/v1/salaries", handle(mux, server.ListSalaries,
			func(r *http.Request, _ map[string]string) (*ListSalariesRequest, error) {
				q := r.URL.Query()
				return &ListSalariesRequest{Status: q.Get("status"), Month: q.Get("month")}, nil
			})},
		{http.MethodGet, "/v1/salaries/{id}", handle(mux, server.GetSalary,
			func(_ *http.Request, params map[string]string) (*GetSalaryRequest, error) {
				return &GetSalaryRequest{Id: params["id"]}, nil
			})},
		{http.MethodPatch, "/v1/salaries/{id}", handle(mux, server.UpdateSalary,
			func(r *http.Request, params map[string]string) (*UpdateSalaryRequest, error) {
				req := &UpdateSalaryRequest{Id: params["id"], Salary: &SalaryPatch{}}
				return req, decodeBody(r, req.Salary)
			})},
		{http.MethodDelete, "/v1/salaries/{id}", handle(mux, server.DeleteSalary,
			func(_ *http.Request, params map[string]string) (*DeleteSalaryRequest, error) {
				return &DeleteSalaryRequest{Id: params["id"]}, nil
			})},
		{http.MethodPost, "/v1/salaries/{id}/pay", handle(mux, server.PaySalary,
			func(r *http.Request, params map[string]string) (*PaySalaryRequest, error) {
				req := &PaySalaryRequest{}
				if err := decodeBody(r, req); err != nil {
					return nil, err
				}
				req.Id = params["id"]
				return req, nil
			})},
	})
}

func registerRoutes(mux *runtime.ServeMux, routes []route) error {
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

// handle builds the request message from the HTTP request, calls the
// server method and writes the response. Errors are rendered by the mux's
// error handler so gRPC codes map to HTTP statuses in one place.
func handle[Req, Resp any](
	mux *runtime.ServeMux,
	call func(context.Context, *Req) (*Resp, error),
	build func(*http.Request, map[string]string) (*Req, error),
) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		ctx := r.Context()
		_, outbound := runtime.MarshalerForRequest(mux, r)

		req, err := build(r, params)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.InvalidArgument, err.Error()))
			return
		}

		resp, err := call(ctx, req)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		body, err := json.Marshal(resp)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.Internal, err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body required")
		}
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}

// SplitValues accepts both repeated and comma separated query values.
func SplitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
