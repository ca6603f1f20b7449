package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloud-gallery/internal/handlers"
	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/metrics"
	"cloud-gallery/internal/middleware"
	"cloud-gallery/internal/preview"
	"cloud-gallery/internal/startup"
	"cloud-gallery/internal/store"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Fast image path; falls back to pure Go when libvips is absent
	preview.InitVips()
	defer preview.ShutdownVips()

	// Connect the object store
	objectStore, err := buildStore(config)
	if err != nil {
		startup.LogFatal("Failed to initialize object store: %v", err)
	}
	objectStore = store.WithMetrics(objectStore)

	// Initialize handlers and router
	h := handlers.New(objectStore, config)
	router := setupRouter(h)

	startup.LogHTTPRoutes(router, config.LogStaticFiles)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	handler := middleware.Logger(loggingConfig)(router)

	// Apply metrics middleware
	if config.MetricsEnabled {
		metrics.InitializeMetrics()
		handler = middleware.Metrics(middleware.DefaultMetricsConfig())(handler)
		go serveMetrics(config.MetricsPort)
	}

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go handleShutdown(srv)

	startup.LogServerStarted(config.Port, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func buildStore(config *startup.Config) (store.Store, error) {
	if config.StoreBackend == startup.BackendMemory {
		return store.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return store.NewMinIO(ctx, store.MinIOConfig{
		Endpoint:  config.StoreEndpoint,
		AccessKey: config.StoreAccessKey,
		SecretKey: config.StoreSecretKey,
		Bucket:    config.StoreBucket,
		UseSSL:    config.StoreUseSSL,
		URLTTL:    config.URLTTL,
	})
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Gallery API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/upload", h.Upload).Methods("POST")
	api.HandleFunc("/gallery", h.Gallery).Methods("GET")
	api.HandleFunc("/original", h.Original).Methods("GET")
	api.HandleFunc("/layout/span", h.Span).Methods("GET")
	api.HandleFunc("/folders", h.CreateFolder).Methods("POST")
	api.HandleFunc("/folders", h.DeleteFolder).Methods("DELETE")
	api.HandleFunc("/entry", h.DeleteEntry).Methods("DELETE")

	return r
}

func serveMetrics(port string) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	logging.Info("Metrics listening on :%s", port)
	if err := http.ListenAndServe(":"+port, m); err != nil {
		logging.Error("Metrics server error: %v", err)
	}
}

func handleShutdown(srv *http.Server) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logging.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error: %v", err)
	}
}
