package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for one aggregation run.
type Config struct {
	AppEnv         string `validate:"required,oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string `validate:"required"`

	TimeZone string `validate:"required"`

	SeasonID         string        `validate:"required"`
	StatsBaseURL     string        `validate:"required,url"`
	StatsUserAgent   string        `validate:"required"`
	StatsTimeout     time.Duration `validate:"gt=0"`
	StatsCircuit     CircuitConfig
	VideoFeedBaseURL string        `validate:"required,url"`
	VideoFeedTimeout time.Duration `validate:"gt=0"`
	VideoFeedLimit   int           `validate:"gt=0"`
	EventWorkers     int           `validate:"gt=0"`

	OutputDir string `validate:"required"`

	Tracing TracingConfig

	ExcludedCompetitionIDs []string
	CompetitionPriority    map[string]int
	CompletedStatuses      []string `validate:"min=1"`

	LogLevel logging.Level
}

type CircuitConfig struct {
	Enabled          bool
	FailureThreshold int
	Cooldown         time.Duration
	ProbeBudget      int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

// DefaultExcludedCompetitionIDs lists competitions the schedule window
// returns but the snapshot never shows.
func DefaultExcludedCompetitionIDs() []string {
	return []string{
		"MLS-COM-000003",
		"MLS-COM-000004",
		"MLS-COM-00002R",
		"MLS-COM-00002X",
	}
}

// DefaultCompetitionPriority orders known competitions in the output.
// Unmapped IDs sort after every mapped one.
func DefaultCompetitionPriority() map[string]int {
	return map[string]int{
		"MLS-COM-000001": 1, // regular season
		"MLS-COM-000002": 2, // cup playoffs
		"MLS-COM-00002G": 3, // leagues cup
		"MLS-COM-000005": 4, // us open cup
		"MLS-COM-00002M": 5, // campeones cup
	}
}

// DefaultCompletedStatuses are the synonyms the stats API uses for a
// finished match, compared case-insensitively.
func DefaultCompletedStatuses() []string {
	return []string{"full-time", "final", "completed", "fulltime", "ft", "post-match"}
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	statsTimeout, err := time.ParseDuration(getEnv("STATS_API_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_TIMEOUT: %w", err)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("STATS_API_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("STATS_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STATS_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("STATS_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATS_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	videoTimeout, err := time.ParseDuration(getEnv("VIDEO_FEED_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VIDEO_FEED_TIMEOUT: %w", err)
	}
	videoLimit, err := getEnvAsInt("VIDEO_FEED_LIMIT", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse VIDEO_FEED_LIMIT: %w", err)
	}

	eventWorkers, err := getEnvAsInt("EVENT_FETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse EVENT_FETCH_WORKERS: %w", err)
	}

	excluded := splitCSV(getEnv("EXCLUDED_COMPETITION_IDS", ""))
	if len(excluded) == 0 {
		excluded = DefaultExcludedCompetitionIDs()
	}

	priority, err := parsePriorityMap(getEnv("COMPETITION_PRIORITY_MAP", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse COMPETITION_PRIORITY_MAP: %w", err)
	}
	if len(priority) == 0 {
		priority = DefaultCompetitionPriority()
	}

	completed := splitCSV(getEnv("COMPLETED_STATUSES", ""))
	if len(completed) == 0 {
		completed = DefaultCompletedStatuses()
	}

	tracingEnabled, err := strconv.ParseBool(getEnv("TRACING_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACING_ENABLED: %w", err)
	}
	tracingInsecure, err := strconv.ParseBool(getEnv("TRACE_OTLP_INSECURE", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACE_OTLP_INSECURE: %w", err)
	}
	tracingEndpoint := strings.TrimSpace(getEnv("TRACE_OTLP_ENDPOINT", "localhost:4318"))
	if tracingEnabled && tracingEndpoint == "" {
		return Config{}, fmt.Errorf("TRACE_OTLP_ENDPOINT must be set when TRACING_ENABLED=true")
	}

	timeZone := strings.TrimSpace(getEnv("APP_TIME_ZONE", "America/New_York"))
	if _, err := time.LoadLocation(timeZone); err != nil {
		return Config{}, fmt.Errorf("load APP_TIME_ZONE %q: %w", timeZone, err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "mls-today-aggregator"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		TimeZone:       timeZone,
		SeasonID:       strings.TrimSpace(getEnv("MLS_SEASON_ID", "MLS-SEA-0001K9")),
		StatsBaseURL:   strings.TrimRight(strings.TrimSpace(getEnv("STATS_API_BASE_URL", "https://stats-api.mlssoccer.com")), "/"),
		StatsUserAgent: getEnv("STATS_API_USER_AGENT", "JEFF-Bot"),
		StatsTimeout:   statsTimeout,
		StatsCircuit: CircuitConfig{
			Enabled:          circuitEnabled,
			FailureThreshold: circuitFailureCount,
			Cooldown:         circuitOpenTimeout,
			ProbeBudget:      circuitHalfOpenMaxReq,
		},
		Tracing: TracingConfig{
			Enabled:  tracingEnabled,
			Endpoint: tracingEndpoint,
			Insecure: tracingInsecure,
		},
		VideoFeedBaseURL:       strings.TrimRight(strings.TrimSpace(getEnv("VIDEO_FEED_BASE_URL", "https://dapi.mlssoccer.com/v2/content")), "/"),
		VideoFeedTimeout:       videoTimeout,
		VideoFeedLimit:         videoLimit,
		EventWorkers:           eventWorkers,
		OutputDir:              getEnv("OUTPUT_DIR", "."),
		ExcludedCompetitionIDs: excluded,
		CompetitionPriority:    priority,
		CompletedStatuses:      completed,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Location resolves the configured civil timezone. Load already
// verified the name, so failures only happen on hand-built configs.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
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

func parsePriorityMap(raw string) (map[string]int, error) {
	out := make(map[string]int)
	parts := strings.Split(raw, ",")
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid map item %q, expected competition_id:number", item)
		}

		key := strings.TrimSpace(segments[0])
		if key == "" {
			return nil, fmt.Errorf("empty competition id in item %q", item)
		}
		value, err := strconv.Atoi(strings.TrimSpace(segments[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid number in item %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("priority must be > 0 in item %q", item)
		}

		out[key] = value
	}
	return out, nil
}
