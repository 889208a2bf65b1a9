package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, func() float64 { return 3 })

	m.CartMutations.WithLabelValues("add").Inc()
	m.CartMutations.WithLabelValues("add").Inc()
	m.CheckoutLinks.WithLabelValues("cart", "ta").Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CartMutations.WithLabelValues("add")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CheckoutLinks.WithLabelValues("cart", "ta")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.ActiveSessions))
}

func TestNew_NilGaugeFunc(t *testing.T) {
	m := New(prometheus.NewRegistry(), nil)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveSessions))
}
