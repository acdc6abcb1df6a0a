package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	// Classification cascade.
	ModelWeightsPath string
	FaceCascadePath  string
	VisionAPIKey     string
	VisionAPIURL     string
	VisionModel      string
	VisionTimeout    time.Duration
	ProbeAddr        string
	ProbeTimeout     time.Duration

	// Request lifecycle.
	CacheMaxSize       int
	CacheTTL           time.Duration
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	MaxFileAge         time.Duration
	FileSweepInterval  time.Duration
	CacheSweepInterval time.Duration
	RateSweepInterval  time.Duration
	StalenessHorizon   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,

		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("UPLOAD_DIR", "./uploads"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),

		ModelWeightsPath: getEnv("MODEL_WEIGHTS_PATH", "./models/face_shape_weights.json"),
		FaceCascadePath:  getEnv("FACE_CASCADE_PATH", "./models/facefinder"),
		VisionAPIKey:     getEnv("OPENROUTER_API_KEY", ""),
		VisionAPIURL:     getEnv("VISION_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		VisionModel:      getEnv("VISION_MODEL", "google/gemini-2.0-flash-exp:free"),
		VisionTimeout:    getDuration("VISION_TIMEOUT", 30*time.Second),
		ProbeAddr:        getEnv("CONNECTIVITY_PROBE_ADDR", "8.8.8.8:53"),
		ProbeTimeout:     getDuration("CONNECTIVITY_PROBE_TIMEOUT", 3*time.Second),

		CacheMaxSize:       getInt("CACHE_MAX_SIZE", 100),
		CacheTTL:           getDuration("CACHE_TTL", 60*time.Minute),
		RateLimitRequests:  getInt("RATE_LIMIT_REQUESTS", 10),
		RateLimitWindow:    getDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		MaxFileAge:         getDuration("MAX_FILE_AGE", 24*time.Hour),
		FileSweepInterval:  getDuration("FILE_SWEEP_INTERVAL", time.Hour),
		CacheSweepInterval: getDuration("CACHE_SWEEP_INTERVAL", 5*time.Minute),
		RateSweepInterval:  getDuration("RATE_SWEEP_INTERVAL", time.Minute),
		StalenessHorizon:   getDuration("STALENESS_HORIZON", 15*time.Minute),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int %q, using default %d", key, raw, def)
		return def
	}
	return val
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s invalid duration %q, using default %s", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
