package config

import (
	"errors"
	"io/fs"

	"github.com/dmitrijs2005/timesheets/internal/timex"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// envConfig maps environment variables onto Config. Unset variables keep
// the value copied in from Config.
type envConfig struct {
	APIBaseURL     string         `env:"TIMESHEETS_API_URL"`
	RequestTimeout timex.Duration `env:"TIMESHEETS_REQUEST_TIMEOUT"`
	SessionDB      string         `env:"TIMESHEETS_SESSION_DB"`
	LogLevel       string         `env:"TIMESHEETS_LOG_LEVEL"`
	LogFormat      string         `env:"TIMESHEETS_LOG_FORMAT"`
	ExportDir      string         `env:"TIMESHEETS_EXPORT_DIR"`
	ExportBucket   string         `env:"TIMESHEETS_EXPORT_BUCKET"`
	ExportPrefix   string         `env:"TIMESHEETS_EXPORT_PREFIX"`
	AWSRegion      string         `env:"AWS_REGION"`
	S3Endpoint     string         `env:"TIMESHEETS_S3_ENDPOINT"`
	S3AccessKey    string         `env:"TIMESHEETS_S3_ACCESS_KEY"`
	S3SecretKey    string         `env:"TIMESHEETS_S3_SECRET_KEY"`
}

// parseEnv loads envFile (if it exists) into the process environment without
// overriding variables that are already set, then overlays cfg with the
// TIMESHEETS_* variables.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	ec := envConfig{
		APIBaseURL:     cfg.APIBaseURL,
		RequestTimeout: timex.Duration{Duration: cfg.RequestTimeout},
		SessionDB:      cfg.SessionDB,
		LogLevel:       cfg.LogLevel,
		LogFormat:      cfg.LogFormat,
		ExportDir:      cfg.ExportDir,
		ExportBucket:   cfg.ExportBucket,
		ExportPrefix:   cfg.ExportPrefix,
		AWSRegion:      cfg.AWSRegion,
		S3Endpoint:     cfg.S3Endpoint,
		S3AccessKey:    cfg.S3AccessKey,
		S3SecretKey:    cfg.S3SecretKey,
	}

	if err := envdecode.Decode(&ec); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		panic(err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.RequestTimeout = ec.RequestTimeout.Duration
	cfg.SessionDB = ec.SessionDB
	cfg.LogLevel = ec.LogLevel
	cfg.LogFormat = ec.LogFormat
	cfg.ExportDir = ec.ExportDir
	cfg.ExportBucket = ec.ExportBucket
	cfg.ExportPrefix = ec.ExportPrefix
	cfg.AWSRegion = ec.AWSRegion
	cfg.S3Endpoint = ec.S3Endpoint
	cfg.S3AccessKey = ec.S3AccessKey
	cfg.S3SecretKey = ec.S3SecretKey
}
