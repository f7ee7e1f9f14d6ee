// Package metrics exposes Prometheus instruments for stock and payroll
// operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

type Metrics struct {
	withdrawals    *prometheus.CounterVec
	withdrawnUnits prometheus.Counter
	restocks       *prometheus.CounterVec
	stockAlerts    *prometheus.CounterVec
	payments       *prometheus.CounterVec
	paidAmount     prometheus.Counter
	eventsDropped  prometheus.Counter
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		withdrawals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "inventory",
			Name:      "withdrawals_total",
			Help:      "Stock withdrawals by result.",
		}, []string{"result"}),
		withdrawnUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "inventory",
			Name:      "withdrawn_units_total",
			Help:      "Units taken out of stock.",
		}),
		restocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "inventory",
			Name:      "restocks_total",
			Help:      "Stock replenishments by result.",
		}, []string{"result"}),
		stockAlerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "inventory",
			Name:      "stock_alerts_total",
			Help:      "Stock changes that left a material low or critical.",
		}, []string{"status"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "payroll",
			Name:      "payments_total",
			Help:      "Salary payments by result.",
		}, []string{"result"}),
		paidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "payroll",
			Name:      "paid_amount_total",
			Help:      "Sum of applied salary payments.",
		}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Subsystem: "events",
			Name:      "dropped_total",
			Help:      "Events dropped because the producer queue was full.",
		}),
	}

	reg.MustRegister(
		m.withdrawals,
		m.withdrawnUnits,
		m.restocks,
		m.stockAlerts,
		m.payments,
		m.paidAmount,
		m.eventsDropped,
	)
	return m
}

// NewNop returns instruments registered with a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) Withdrawal(result string, units int64) {
	m.withdrawals.WithLabelValues(result).Inc()
	if result == ResultOK {
		m.withdrawnUnits.Add(float64(units))
	}
}

func (m *Metrics) Restock(result string) {
	m.restocks.WithLabelValues(result).Inc()
}

func (m *Metrics) StockAlert(status string) {
	m.stockAlerts.WithLabelValues(status).Inc()
}

// Payment records a payment attempt. amount is only added on success.
func (m *Metrics) Payment(result string, amount float64) {
	m.payments.WithLabelValues(result).Inc()
	if result == ResultOK {
		m.paidAmount.Add(amount)
	}
}

func (m *Metrics) EventDropped() {
	m.eventsDropped.Inc()
}
