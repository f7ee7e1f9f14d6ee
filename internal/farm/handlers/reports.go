package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	pb "github.com/gartstein/farm/api/farm/v1"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/gartstein/farm/internal/farm/report"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// inventoryReport serves the material listing as an xlsx download. It
// accepts the same status and category filters as the listing route.
func inventoryReport(mux *runtime.ServeMux, service MaterialController, logger *zap.Logger) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		q := r.URL.Query()
		filter := models.MaterialFilter{Category: q.Get("category")}
		for _, s := range pb.SplitValues(q["status"]) {
			filter.Statuses = append(filter.Statuses, models.StockStatus(s))
		}

		materials, err := service.ListMaterials(r.Context(), filter)
		if err != nil {
			writeHTTPError(mux, w, r, mapServiceError(logger, err))
			return
		}
		serveWorkbook(mux, w, r, "inventory", func(out io.Writer) error {
			return report.Inventory(out, materials)
		})
	}
}

// payrollReport serves the salary listing as an xlsx download.
func payrollReport(mux *runtime.ServeMux, service SalaryController, logger *zap.Logger) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		q := r.URL.Query()
		salaries, err := service.ListSalaries(r.Context(), models.SalaryFilter{
			Status:      models.PaymentStatus(q.Get("status")),
			SalaryMonth: q.Get("month"),
		})
		if err != nil {
			writeHTTPError(mux, w, r, mapServiceError(logger, err))
			return
		}
		serveWorkbook(mux, w, r, "payroll", func(out io.Writer) error {
			return report.Payroll(out, salaries)
		})
	}
}

func serveWorkbook(mux *runtime.ServeMux, w http.ResponseWriter, r *http.Request, name string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeHTTPError(mux, w, r, status.Errorf(codes.Internal, "render %s report: %v", name, err))
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeHTTPError(mux *runtime.ServeMux, w http.ResponseWriter, r *http.Request, err error) {
	_, outbound := runtime.MarshalerForRequest(mux, r)
	runtime.HTTPError(r.Context(), mux, outbound, w, r, err)
}
