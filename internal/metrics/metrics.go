package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloud_gallery_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloud_gallery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cloud_gallery_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Ingestion pipeline metrics
var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloud_gallery_uploads_total",
			Help: "Total number of ingested files by terminal status",
		},
		[]string{"status"},
	)

	UploadBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cloud_gallery_upload_batch_duration_seconds",
			Help:    "Wall time of one upload batch",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	UploadBatchFiles = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cloud_gallery_upload_batch_files",
			Help:    "Number of files processed per batch",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		},
	)

	PreviewsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloud_gallery_previews_generated_total",
			Help: "Preview generation attempts by file type and outcome",
		},
		[]string{"type", "status"},
	)
)

// Object store metrics
var (
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloud_gallery_store_operations_total",
			Help: "Object store operations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cloud_gallery_store_operation_duration_seconds",
			Help:    "Object store operation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Gallery metrics
var (
	GalleryPagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloud_gallery_gallery_pages_total",
			Help: "Total number of gallery pages served",
		},
	)

	GalleryEntriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloud_gallery_gallery_entries_total",
			Help: "Total number of gallery entries returned",
		},
	)

	FoldersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloud_gallery_folders_created_total",
			Help: "Total number of virtual folders created",
		},
	)

	DeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloud_gallery_deletes_total",
			Help: "Entry deletions by result (done, partial, error)",
		},
		[]string{"result"},
	)
)
