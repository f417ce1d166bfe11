package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/timesheets/internal/flagx"
	"github.com/dmitrijs2005/timesheets/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration, shared by JSON and
// YAML. Empty fields leave the current value alone.
type fileConfig struct {
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SessionDB      string         `json:"session_db" yaml:"session_db"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	ExportDir      string         `json:"export_dir" yaml:"export_dir"`
	ExportBucket   string         `json:"export_bucket" yaml:"export_bucket"`
	ExportPrefix   string         `json:"export_prefix" yaml:"export_prefix"`
	AWSRegion      string         `json:"aws_region" yaml:"aws_region"`
	S3Endpoint     string         `json:"s3_endpoint" yaml:"s3_endpoint"`
}

// parseFile overlays cfg with the file named by -c / -config. Files ending
// in .yaml or .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.SessionDB, fc.SessionDB)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.ExportDir, fc.ExportDir)
	setString(&cfg.ExportBucket, fc.ExportBucket)
	setString(&cfg.ExportPrefix, fc.ExportPrefix)
	setString(&cfg.AWSRegion, fc.AWSRegion)
	setString(&cfg.S3Endpoint, fc.S3Endpoint)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
