// Package metrics holds the Prometheus collectors of the file storage service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	// Reconciliation
	ReconciledRecords *prometheus.CounterVec // filekeeper_reconciled_records_total{op}

	// Workflows
	Commits            *prometheus.CounterVec // filekeeper_commits_total{result}
	PendingRelocations prometheus.Counter     // filekeeper_pending_relocation_keys_total
	Deletes            *prometheus.CounterVec // filekeeper_deletes_total{result}

	// Object store
	ObjectStoreRequests *prometheus.CounterVec   // filekeeper_objectstore_requests_total{operation,status}
	ObjectStoreDuration *prometheus.HistogramVec // filekeeper_objectstore_request_duration_seconds{operation}

	// Transport
	GRPCRequests *prometheus.CounterVec   // filekeeper_grpc_requests_total{method,code}
	HTTPRequests *prometheus.CounterVec   // filekeeper_http_requests_total{method,path,status}
	HTTPDuration *prometheus.HistogramVec // filekeeper_http_request_duration_seconds{method,path}
}

// New registers all collectors with registry. A nil registry means the
// default Prometheus registerer.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	f := promauto.With(registry)

	return &Metrics{
		ReconciledRecords: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_reconciled_records_total",
			Help: "Metadata records written by the reconciliation engine, by operation",
		}, []string{"op"}),

		Commits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_commits_total",
			Help: "Upload commits by result (ok, partial, failed)",
		}, []string{"result"}),

		PendingRelocations: f.NewCounter(prometheus.CounterOpts{
			Name: "filekeeper_pending_relocation_keys_total",
			Help: "Object keys left in the temporary classification after a partial commit",
		}),

		Deletes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_deletes_total",
			Help: "File deletions by result",
		}, []string{"result"}),

		ObjectStoreRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_objectstore_requests_total",
			Help: "Object store requests by operation and status",
		}, []string{"operation", "status"}),

		ObjectStoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "filekeeper_objectstore_request_duration_seconds",
			Help:    "Object store request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),

		GRPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_grpc_requests_total",
			Help: "gRPC requests by method and status code",
		}, []string{"method", "code"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "filekeeper_http_requests_total",
			Help: "HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "filekeeper_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// NewUnregistered returns collectors bound to a private registry. Handy for
// tests and tools that do not export metrics.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}
