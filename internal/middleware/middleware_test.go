package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriterCapturesStatusAndBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // second call ignored
	n, err := rw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = (%d, %v)", n, err)
	}

	if rw.statusCode != http.StatusTeapot {
		t.Errorf("statusCode = %d, want %d", rw.statusCode, http.StatusTeapot)
	}
	if rw.bytesWritten != 5 {
		t.Errorf("bytesWritten = %d, want 5", rw.bytesWritten)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("Recorded status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestResponseWriterImplicitOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want implicit 200", rw.statusCode)
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	handler := Logger(DefaultLoggingConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))
	if !called {
		t.Fatal("Wrapped handler not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want 204", rec.Code)
	}
}

func TestLoggerSkipPaths(t *testing.T) {
	t.Parallel()

	cfg := LoggingConfig{SkipPaths: []string{"/static"}, LogHealthChecks: false}
	handler := Logger(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A skipped path must receive the raw writer, not the wrapper.
		if _, ok := w.(*responseWriter); ok {
			t.Errorf("Path %s was not skipped", r.URL.Path)
		}
	}))

	for _, path := range []string{"/static/app.js", "/healthz"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
}

func TestClientAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		forwarded string
		remote    string
		expected  string
	}{
		{"direct", "", "10.0.0.1:1234", "10.0.0.1:1234"},
		{"single proxy", "203.0.113.5", "10.0.0.1:1234", "203.0.113.5"},
		{"proxy chain", "203.0.113.5, 10.0.0.2, 10.0.0.3", "10.0.0.1:1234", "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := clientAddr(r); got != tt.expected {
				t.Errorf("clientAddr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"/api/gallery", "/api/gallery"},
		{"/api/layout/span", "/api/layout/span"},
		{"/uploads/users/u1/previews/20240101_000000_x_photo.jpg", "/uploads/users/u1/{path}"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := normalizePath(tt.path); got != tt.expected {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMetricsSkipPaths(t *testing.T) {
	t.Parallel()

	handler := Metrics(DefaultMetricsConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := w.(*metricsResponseWriter); ok {
			t.Errorf("Path %s was not skipped", r.URL.Path)
		}
	}))

	for _, path := range []string{"/metrics", "/health", "/readyz"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
}

func TestMetricsRecordsRequest(t *testing.T) {
	t.Parallel()

	handler := Metrics(DefaultMetricsConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := w.(*metricsResponseWriter); !ok {
			t.Error("Recorded path did not get the metrics wrapper")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want 200", rec.Code)
	}
}
