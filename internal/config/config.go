package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/logging"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/platform/resilience"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	LogLevel               logging.Level
	DataSource             string
	DBURL                  string
	SnapshotPath           string
	SourceQueryTimeout     time.Duration
	SourceCircuit          resilience.CircuitBreakerConfig
	CacheEnabled           bool
	CacheTTL               time.Duration
	AutoUpdateEnabled      bool
	UpdateInterval         time.Duration
	CacheCleanupCron       string
	HealthCheckInterval    time.Duration
	SchedulerWorkers       int
	HighlightTeam          string
	CurrentRound           round.ID
	RoundOverridesFile     string
	RoundOverrides         round.Overrides
	RoundOrder             round.Order
	CORSAllowedOrigins     []string
	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	MetricsEnabled         bool
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped;
// variables already set in the environment win over file values.
func LoadFiles(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "plataforma-penafiel"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8050"),
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                  strings.TrimSpace(getEnv("DB_URL", "")),
		SnapshotPath:           strings.TrimSpace(getEnv("SNAPSHOT_PATH", "")),
		CacheCleanupCron:       strings.TrimSpace(getEnv("CACHE_CLEANUP_CRON", "0 3 * * *")),
		HighlightTeam:          strings.TrimSpace(getEnv("HIGHLIGHT_TEAM", "Penafiel")),
		RoundOverridesFile:     strings.TrimSpace(getEnv("ROUND_OVERRIDES_FILE", "")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofAddr:              getEnv("PPROF_ADDR", "127.0.0.1:6060"),
		UptraceDSN:             strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", "plataforma-penafiel"),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}

	cfg.DataSource = strings.ToLower(strings.TrimSpace(getEnv("DATA_SOURCE", SourcePostgres)))
	switch cfg.DataSource {
	case SourcePostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when DATA_SOURCE=%s", SourcePostgres)
		}
	case SourceSQLite:
		if cfg.SnapshotPath == "" {
			return Config{}, fmt.Errorf("SNAPSHOT_PATH is required when DATA_SOURCE=%s", SourceSQLite)
		}
	case SourceMemory:
	default:
		return Config{}, fmt.Errorf(
			"invalid DATA_SOURCE %q: valid values are %s, %s, %s",
			cfg.DataSource, SourcePostgres, SourceSQLite, SourceMemory,
		)
	}

	if cfg.SourceQueryTimeout, err = positiveDuration("SOURCE_QUERY_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("SOURCE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("SOURCE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := positiveDuration("SOURCE_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.SourceCircuit = resilience.CircuitBreakerConfig{
		Enabled:          circuitEnabled,
		FailureThreshold: circuitFailureCount,
		OpenTimeout:      circuitOpenTimeout,
		HalfOpenMaxReq:   circuitHalfOpenMaxReq,
	}

	if cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	if cfg.CacheTTL, err = positiveDuration("CACHE_TTL", "15m"); err != nil {
		return Config{}, err
	}

	if cfg.AutoUpdateEnabled, err = strconv.ParseBool(getEnv("AUTO_UPDATE_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse AUTO_UPDATE_ENABLED: %w", err)
	}
	if cfg.UpdateInterval, err = positiveDuration("UPDATE_INTERVAL", "30m"); err != nil {
		return Config{}, err
	}
	if cfg.HealthCheckInterval, err = positiveDuration("HEALTH_CHECK_INTERVAL", "5m"); err != nil {
		return Config{}, err
	}
	if _, err := cron.ParseStandard(cfg.CacheCleanupCron); err != nil {
		return Config{}, fmt.Errorf("parse CACHE_CLEANUP_CRON: %w", err)
	}
	if cfg.SchedulerWorkers, err = getEnvAsInt("SCHEDULER_WORKERS", 2); err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULER_WORKERS: %w", err)
	}
	if cfg.SchedulerWorkers < 1 {
		return Config{}, fmt.Errorf("SCHEDULER_WORKERS must be >= 1")
	}

	if cfg.HighlightTeam == "" {
		return Config{}, fmt.Errorf("HIGHLIGHT_TEAM must not be empty")
	}
	if cfg.CurrentRound, err = round.Parse(getEnv("CURRENT_ROUND", "10")); err != nil {
		return Config{}, fmt.Errorf("parse CURRENT_ROUND: %w", err)
	}
	if cfg.RoundOverrides, cfg.RoundOrder, err = LoadRoundTable(cfg.RoundOverridesFile); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	return cfg, nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
