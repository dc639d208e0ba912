package fetch

import "github.com/zeromicro/go-zero/core/metric"

var (
	fetchJobsDone = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "fetch",
		Name:      "jobs_done_total",
		Help:      "Total fonts fetched successfully",
	})

	fetchJobsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "fetch",
		Name:      "jobs_failed_total",
		Help:      "Total font fetches failed permanently",
		Labels:    []string{"reason"},
	})

	fetchJobsRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "fetch",
		Name:      "jobs_retried_total",
		Help:      "Total font fetch retries",
	})

	fetchDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "fetch",
		Name:      "duration_seconds",
		Help:      "Font fetch duration in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "plat_googlefonts",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current fetch job count by status",
		Labels:    []string{"status"},
	})
)
