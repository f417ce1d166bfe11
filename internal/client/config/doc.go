// Package config loads runtime configuration for the timesheets CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml/.yml are parsed as YAML, everything else as JSON.
//  3. A .env file in the working directory (loaded with godotenv, never
//     overriding variables already set) and the process environment.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-s string   session database file
//	-l string   log level
//
// # File schema
//
// Durations use timex.Duration, so "15s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "15s",
//	  "session_db": "session.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "export_dir": "./exports",
//	  "export_bucket": "",
//	  "aws_region": "us-east-1",
//	  "s3_endpoint": ""
//	}
//
// # Environment
//
// TIMESHEETS_API_URL, TIMESHEETS_REQUEST_TIMEOUT, TIMESHEETS_SESSION_DB,
// TIMESHEETS_LOG_LEVEL, TIMESHEETS_LOG_FORMAT, TIMESHEETS_EXPORT_DIR,
// TIMESHEETS_EXPORT_BUCKET, TIMESHEETS_EXPORT_PREFIX, AWS_REGION,
// TIMESHEETS_S3_ENDPOINT, TIMESHEETS_S3_ACCESS_KEY, TIMESHEETS_S3_SECRET_KEY.
// S3 credentials are only read from the environment.
package config
