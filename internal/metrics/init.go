package metrics

// InitializeMetrics pre-populates expected label combinations so that every
// metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, status := range []string{"done", "error"} {
		UploadsTotal.WithLabelValues(status)
	}

	for _, t := range []string{"image", "video", "pdf"} {
		PreviewsGenerated.WithLabelValues(t, "success")
		PreviewsGenerated.WithLabelValues(t, "error")
	}

	for _, op := range []string{"put", "resolve-url", "list", "remove"} {
		StoreOperationsTotal.WithLabelValues(op, "success")
		StoreOperationsTotal.WithLabelValues(op, "error")
		StoreOperationDuration.WithLabelValues(op)
	}

	for _, result := range []string{"done", "partial", "error"} {
		DeletesTotal.WithLabelValues(result)
	}
}
