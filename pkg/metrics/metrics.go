package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "docmanager"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	DocumentsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "documents_saved_total", Help: "Number of saved documents by id source (generated|provided)."},
		[]string{"id_source"},
	)
	DocumentLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "document_lookups_total", Help: "Number of lookups by id, by result (hit|miss)."},
		[]string{"result"},
	)
	DocumentSearches = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "document_searches_total", Help: "Number of executed searches."},
	)
	DocumentSearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: namespace, Name: "document_search_results", Help: "Number of documents returned per search.", Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000}},
	)
	DocumentsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "documents_stored", Help: "Number of documents currently held by the store."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(DocumentsSaved)
	reg.MustRegister(DocumentLookups)
	reg.MustRegister(DocumentSearches)
	reg.MustRegister(DocumentSearchResults)
	reg.MustRegister(DocumentsStored)
}
