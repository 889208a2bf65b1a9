package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はストアフロントのカウンタ類。
// Registryを外から渡せるので、テストでは毎回新しいものを使う。
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	CartMutations   *prometheus.CounterVec
	CheckoutLinks   *prometheus.CounterVec
	CatalogFailures *prometheus.CounterVec
	ActiveSessions  prometheus.GaugeFunc
}

func New(reg prometheus.Registerer, activeSessions func() float64) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshcart_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "freshcart_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		CartMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshcart_cart_mutations_total",
				Help: "Cart ledger mutations by operation",
			},
			[]string{"op"},
		),
		CheckoutLinks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshcart_checkout_links_total",
				Help: "WhatsApp checkout links generated",
			},
			[]string{"kind", "lang"},
		),
		CatalogFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshcart_catalog_store_failures_total",
				Help: "Failed calls to the catalog table store",
			},
			[]string{"op"},
		),
	}

	if activeSessions == nil {
		activeSessions = func() float64 { return 0 }
	}
	m.ActiveSessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "freshcart_active_sessions",
			Help: "Visitor sessions currently held in memory",
		},
		activeSessions,
	)

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CartMutations,
		m.CheckoutLinks,
		m.CatalogFailures,
		m.ActiveSessions,
	)
	return m
}
