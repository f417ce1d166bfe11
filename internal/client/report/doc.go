// Package report turns utilization statistics and timesheets into summary
// tiles and CSV exports, and ships the exports to a local directory or an
// S3-compatible bucket.
package report
