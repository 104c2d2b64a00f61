package reminder

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

const (
	runResultSuccess = "success"
	runResultFailure = "failure"
	runResultSkipped = "skipped"
)

// Metrics ...
type Metrics struct {
	runs          *prometheus.CounterVec
	events        prometheus.Counter
	notifications prometheus.Counter
	duration      prometheus.Histogram
}

// NewMetrics registers the job collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "club",
			Subsystem: "reminder",
			Name:      "runs_total",
			Help:      "Number of reminder job invocations by result",
		}, []string{"result"}),
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "club",
			Subsystem: "reminder",
			Name:      "events_processed_total",
			Help:      "Number of events flagged as reminded",
		}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "club",
			Subsystem: "reminder",
			Name:      "notifications_created_total",
			Help:      "Number of reminder notifications inserted",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "club",
			Subsystem: "reminder",
			Name:      "run_duration_seconds",
			Help:      "Duration of reminder job invocations",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.runs, m.events, m.notifications, m.duration)
	return m
}

func (m *Metrics) observe(result Result, d time.Duration) {
	if m == nil {
		return
	}

	m.duration.Observe(d.Seconds())

	switch {
	case result.Err != nil:
		m.runs.WithLabelValues(runResultFailure).Inc()
	case result.Skipped:
		m.runs.WithLabelValues(runResultSkipped).Inc()
	default:
		m.runs.WithLabelValues(runResultSuccess).Inc()
	}

	m.events.Add(float64(result.EventsProcessed))
	m.notifications.Add(float64(result.NotificationsCreated))
}
