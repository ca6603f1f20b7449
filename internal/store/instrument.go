package store

import (
	"context"
	"time"

	"cloud-gallery/internal/metrics"
)

// instrumented decorates a Store with Prometheus operation metrics.
type instrumented struct {
	inner Store
}

// WithMetrics wraps a Store so every operation is counted and timed.
func WithMetrics(s Store) Store {
	return &instrumented{inner: s}
}

func observe(op string, start time.Time, err error) {
	metrics.StoreOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StoreOperationsTotal.WithLabelValues(op, status).Inc()
}

func (s *instrumented) Put(ctx context.Context, path string, data []byte, contentType string, metadata map[string]string) error {
	start := time.Now()
	err := s.inner.Put(ctx, path, data, contentType, metadata)
	observe("put", start, err)
	return err
}

func (s *instrumented) ResolveURL(ctx context.Context, path string) (string, error) {
	start := time.Now()
	url, err := s.inner.ResolveURL(ctx, path)
	observe("resolve-url", start, err)
	return url, err
}

func (s *instrumented) List(ctx context.Context, prefix string, pageSize int, cursor string) (Page, error) {
	start := time.Now()
	page, err := s.inner.List(ctx, prefix, pageSize, cursor)
	observe("list", start, err)
	return page, err
}

func (s *instrumented) Remove(ctx context.Context, path string) error {
	start := time.Now()
	err := s.inner.Remove(ctx, path)
	observe("remove", start, err)
	return err
}
