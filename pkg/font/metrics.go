package font

import (
	"errors"

	"github.com/zeromicro/go-zero/core/metric"
)

var (
	catalogLoads = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "catalog",
		Name:      "loads_total",
		Help:      "Catalog loads by result",
		Labels:    []string{"result"},
	})

	cssBuilds = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "css",
		Name:      "builds_total",
		Help:      "Font-face CSS builds by result",
		Labels:    []string{"result"},
	})

	cssBuildDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "css",
		Name:      "build_duration_seconds",
		Help:      "Font-face CSS build duration in seconds",
		Labels:    []string{"cached"},
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	cssCacheHits = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "css",
		Name:      "cache_hits_total",
		Help:      "Font-face CSS cache hits by context scope",
		Labels:    []string{"scope"},
	})

	cssCacheMisses = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "css",
		Name:      "cache_misses_total",
		Help:      "Font-face CSS cache misses by context scope",
		Labels:    []string{"scope"},
	})
)

// failureLabel classifies a build error for metrics.
func failureLabel(err error) string {
	switch {
	case errors.Is(err, ErrEmbedFileUnavailable):
		return "embed_unavailable"
	case errors.Is(err, ErrEmbedFileMalformed):
		return "embed_malformed"
	default:
		return "error"
	}
}

// contextScope buckets a context id into "site" or "journal" so label
// cardinality does not grow with the number of journals.
func contextScope(contextID int64) string {
	if contextID == ContextIDNone {
		return "site"
	}
	return "journal"
}
