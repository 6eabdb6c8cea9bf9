// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SchemaFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_fallbacks_total",
			Help: "Total number of out-of-vocabulary values replaced by a fallback",
		},
		[]string{"schema", "field"},
	)

	SchemaDecodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_decode_total",
			Help: "Total number of record constructions by outcome",
		},
		[]string{"schema", "status"},
	)

	SchemaDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_decode_failures_total",
			Help: "Total number of failed record constructions by error code",
		},
		[]string{"schema", "error_code"},
	)
)

// RecordFallback counts one fallback substitution.
func RecordFallback(schema, field string) {
	SchemaFallbacks.WithLabelValues(schema, field).Inc()
}

// RecordDecode counts one construction attempt; errorCode is empty on success.
func RecordDecode(schema, errorCode string) {
	if errorCode == "" {
		SchemaDecodes.WithLabelValues(schema, "success").Inc()
		return
	}
	SchemaDecodes.WithLabelValues(schema, "failure").Inc()
	SchemaDecodeFailures.WithLabelValues(schema, errorCode).Inc()
}
