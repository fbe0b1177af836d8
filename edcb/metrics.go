package edcb

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// outcome labels the terminal state of one façade call, for Metrics.
type outcome string

const (
	outcomeSuccess       outcome = "success"
	outcomeTransportFail outcome = "transport_error"
	outcomeProtocolFail  outcome = "protocol_error"
)

// Metrics is a prometheus.Collector tracking CtrlCmd call volume and
// latency by opcode. A nil *Metrics is valid: every method is a no-op, so
// a Client without SetMetrics never touches prometheus.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics builds a Metrics ready for registration. Callers typically
// do:
//
//	m := edcb.NewMetrics()
//	prometheus.MustRegister(m)
//	client.SetMetrics(m)
func NewMetrics() *Metrics {
	return &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "edcb",
			Subsystem: "ctrlcmd",
			Name:      "requests_total",
			Help:      "CtrlCmd requests by opcode and outcome.",
		}, []string{"opcode", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "edcb",
			Subsystem: "ctrlcmd",
			Name:      "request_duration_seconds",
			Help:      "CtrlCmd round-trip latency by opcode.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"opcode"}),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	if m == nil {
		return
	}
	m.requests.Describe(ch)
	m.latency.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	if m == nil {
		return
	}
	m.requests.Collect(ch)
	m.latency.Collect(ch)
}

func (m *Metrics) observe(opcode int32, o outcome, seconds float64) {
	if m == nil {
		return
	}
	op := strconv.Itoa(int(opcode))
	m.requests.WithLabelValues(op, string(o)).Inc()
	m.latency.WithLabelValues(op).Observe(seconds)
}
