// Package metrics defines the Prometheus instrumentation for the gallery
// service: HTTP traffic, the upload pipeline, object store operations and
// gallery activity. Metrics are exposed on a dedicated listener when
// METRICS_ENABLED is set.
package metrics
