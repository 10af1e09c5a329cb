// Package metrics holds the Prometheus collectors of the backend. They are
// registered on the default registry and served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "showcase"

var (
	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by result (created, invalid, error).",
		},
		[]string{"result"},
	)

	approvalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approval_decisions_total",
			Help:      "Approval link uses by decision (approve, reject) and result (ok, not_found, error).",
		},
		[]string{"decision", "result"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by kind and result (sent, failed).",
		},
		[]string{"kind", "result"},
	)

	enrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "video_enrichment_total",
			Help:      "Gallery video enrichments by source (live, fallback).",
		},
		[]string{"source"},
	)

	metadataCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_cache_total",
			Help:      "Video metadata cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	metadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "metadata_fetch_duration_seconds",
			Help:      "Duration of calls to the external video metadata API.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	galleryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gallery_build_duration_seconds",
			Help:      "Time spent building one gallery page, enrichment included.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func IncRegistration(result string) { registrationsTotal.WithLabelValues(result).Inc() }

func IncApprovalDecision(decision, result string) {
	approvalsTotal.WithLabelValues(decision, result).Inc()
}

func IncNotification(kind, result string) { notificationsTotal.WithLabelValues(kind, result).Inc() }

func IncEnrichment(source string) { enrichmentTotal.WithLabelValues(source).Inc() }

func IncMetadataCache(result string) { metadataCacheTotal.WithLabelValues(result).Inc() }

func ObserveMetadataFetch(seconds float64) { metadataFetchDuration.Observe(seconds) }

func ObserveGalleryBuild(seconds float64) { galleryDuration.Observe(seconds) }
