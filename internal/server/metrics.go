package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menuscan_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menuscan_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Extraction metrics
	extractRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menuscan_extract_requests_total",
			Help: "Total number of extraction requests",
		},
		[]string{"kind", "status"}, // status: ok, empty, decode_error, timeout
	)

	extractDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menuscan_extract_duration_seconds",
			Help:    "Extraction duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)

	extractItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menuscan_extract_items",
			Help:    "Number of items recovered per extraction",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"kind"},
	)

	extractRegions = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "menuscan_extract_regions_detected",
			Help:    "Number of photo regions detected per page",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		},
		[]string{"kind"},
	)
)
