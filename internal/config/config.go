package config

import (
	"strings"
	"time"

	"github.com/visalhout/PagePair/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	Convert     ConvertConfig
	RateLimiter RateLimiterConfig
	Minio       MinioConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// ConvertConfig carries the batch defaults and upload limits for the API.
// Per-request option fields override the defaults.
type ConvertConfig struct {
	DefaultDPI     int
	DefaultQuality int
	// Directory where converted batches are written, one sub directory per batch
	OutputDir string
	// Upper bound of a single uploaded PDF in MiB
	MaxUploadMB int64
	// How many files a single batch request may carry
	MaxBatchFiles int
}

type MinioConfig struct {
	// When disabled, outputs are only kept on local disk
	Enabled    bool
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	USE_SSL    bool
	BUCKET     string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		Convert: ConvertConfig{
			DefaultDPI:     env.GetInt("CONVERT_DEFAULT_DPI", 300),
			DefaultQuality: env.GetInt("CONVERT_DEFAULT_QUALITY", 97),
			OutputDir:      env.GetString("CONVERT_OUTPUT_DIR", ""),
			MaxUploadMB:    int64(env.GetInt("CONVERT_MAX_UPLOAD_MB", 50)),
			MaxBatchFiles:  env.GetInt("CONVERT_MAX_BATCH_FILES", 20),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Minio: MinioConfig{
			Enabled:    env.GetBool("MINIO_ENABLED", false),
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
			BUCKET:     env.GetString("MINIO_BUCKET", "pagepair"),
		},
	}
}
