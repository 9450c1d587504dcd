// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto; the /metrics route exposes them next to the HTTP
// metrics collected by echoprometheus. A router built with its own registry
// registers Collectors on it as well.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - outcome: "success", "invalid" (validation), "rejected" (duplicate or bad credentials), "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register/login attempts, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added to the catalog.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// ChargesTotal counts charge attempts forwarded to the payment processor.
// Labels:
//   - outcome: "succeeded", "declined" (processor rejection), "error"
//   - currency: lowercase ISO currency code
var ChargesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charges_total",
		Help:      "Total number of charge attempts, by outcome and currency.",
	},
	[]string{"outcome", "currency"},
)

// ChargeAmountTotal sums the amount of successful charges in the currency's
// smallest unit.
var ChargeAmountTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charge_amount_total",
		Help:      "Sum of successfully charged amounts in minor units, by currency.",
	},
	[]string{"currency"},
)

// Outcome label values shared by handlers.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Collectors returns every business metric so it can be registered on a
// registry other than the default one.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AuthAttemptsTotal,
		ProductsCreatedTotal,
		ChargesTotal,
		ChargeAmountTotal,
	}
}
