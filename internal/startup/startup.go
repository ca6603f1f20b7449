package startup

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"cloud-gallery/internal/logging"
	"cloud-gallery/internal/workers"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Store backends selectable via STORE_BACKEND.
const (
	BackendMinIO  = "minio"
	BackendMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	Port        string
	MetricsPort string

	StoreBackend   string
	StoreEndpoint  string
	StoreAccessKey string
	StoreSecretKey string
	StoreBucket    string
	StoreUseSSL    bool
	URLTTL         time.Duration

	BatchSize int
	PageSize  int

	LogStaticFiles  bool
	LogHealthChecks bool
	MetricsEnabled  bool
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", BackendMinIO)),
		StoreEndpoint:   getEnv("STORE_ENDPOINT", "localhost:9000"),
		StoreAccessKey:  getEnv("STORE_ACCESS_KEY", ""),
		StoreSecretKey:  getEnv("STORE_SECRET_KEY", ""),
		StoreBucket:     getEnv("STORE_BUCKET", "cloud-gallery"),
		StoreUseSSL:     getEnvBool("STORE_USE_SSL", false),
		BatchSize:       getEnvInt("BATCH_SIZE", workers.ForIO(10)),
		PageSize:        getEnvInt("PAGE_SIZE", 20),
		LogStaticFiles:  getEnvBool("LOG_STATIC_FILES", false),
		LogHealthChecks: getEnvBool("LOG_HEALTH_CHECKS", true),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
	}

	urlTTLStr := getEnv("URL_TTL", "1h")
	urlTTL, err := time.ParseDuration(urlTTLStr)
	if err != nil {
		logging.Warn("  Invalid URL_TTL %q, using default: 1h", urlTTLStr)
		urlTTL = time.Hour
	}
	cfg.URLTTL = urlTTL

	if cfg.BatchSize < 1 {
		logging.Warn("  BATCH_SIZE below minimum, using 1")
		cfg.BatchSize = 1
	}
	if cfg.PageSize < 1 {
		logging.Warn("  PAGE_SIZE below minimum, using 20")
		cfg.PageSize = 20
	}

	logging.Info("  PORT:              %s", cfg.Port)
	logging.Info("  METRICS_PORT:      %s", cfg.MetricsPort)
	logging.Info("  METRICS_ENABLED:   %v", cfg.MetricsEnabled)
	logging.Info("  STORE_BACKEND:     %s", cfg.StoreBackend)
	logging.Info("  STORE_ENDPOINT:    %s", cfg.StoreEndpoint)
	logging.Info("  STORE_BUCKET:      %s", cfg.StoreBucket)
	logging.Info("  STORE_USE_SSL:     %v", cfg.StoreUseSSL)
	logging.Info("  URL_TTL:           %s", cfg.URLTTL)
	logging.Info("  BATCH_SIZE:        %d", cfg.BatchSize)
	logging.Info("  PAGE_SIZE:         %d", cfg.PageSize)
	logging.Info("  LOG_STATIC_FILES:  %v", cfg.LogStaticFiles)
	logging.Info("  LOG_HEALTH_CHECKS: %v", cfg.LogHealthChecks)
	logging.Info("  LOG_LEVEL:         %s", logging.GetLevel())

	switch cfg.StoreBackend {
	case BackendMinIO:
		if cfg.StoreAccessKey == "" || cfg.StoreSecretKey == "" {
			return nil, fmt.Errorf("STORE_ACCESS_KEY and STORE_SECRET_KEY are required for the minio backend")
		}
	case BackendMemory:
		logging.Warn("  Using in-memory store backend; objects are lost on restart")
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %s or %s)", cfg.StoreBackend, BackendMinIO, BackendMemory)
	}

	return cfg, nil
}

func logSystemInfo() {
	info := GetBuildInfo()
	logging.Info("cloud-gallery %s (commit %s, built %s)", info.Version, info.Commit, info.BuildTime)
	logging.Info("%s %s/%s, %d CPUs", info.GoVersion, info.OS, info.Arch, runtime.NumCPU())
}

// LogFatal logs a fatal startup error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// LogServerStarted logs the final startup line with total boot time
func LogServerStarted(port string, bootTime time.Duration) {
	logging.Info("------------------------------------------------------------")
	logging.Info("Server listening on :%s (started in %v)", port, bootTime)
	logging.Info("------------------------------------------------------------")
}

// LogHTTPRoutes walks the router and logs every registered route
func LogHTTPRoutes(router *mux.Router, logStatic bool) {
	type routeInfo struct {
		methods string
		path    string
	}
	var routes []routeInfo

	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil //nolint:nilerr // routes without a path template are skipped
		}
		if !logStatic && path == "/" {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		routes = append(routes, routeInfo{methods: strings.Join(methods, ","), path: path})
		return nil
	})

	sort.Slice(routes, func(i, j int) bool { return routes[i].path < routes[j].path })

	logging.Info("HTTP routes:")
	for _, r := range routes {
		logging.Info("  %-12s %s", r.methods, r.path)
	}
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
