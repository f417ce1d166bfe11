package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the timesheets CLI.
//
// Units: RequestTimeout is a time.Duration; on the command line it is given
// in whole seconds.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionDB      string
	LogLevel       string
	LogFormat      string

	ExportDir    string
	ExportBucket string
	ExportPrefix string
	AWSRegion    string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.SessionDB = "session.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ExportDir = "."
	c.AWSRegion = "us-east-1"
}

// LoadConfig builds a Config from defaults, then the config file, then
// .env and the process environment, then command-line flags. Later sources
// win. Invalid input panics.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg, ".env")
	parseFlags(cfg, args)
	return cfg
}
