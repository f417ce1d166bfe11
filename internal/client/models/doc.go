// Package models holds client-side projections of the timesheet API
// resources. The server owns these records; the client only caches what it
// last fetched, so fields mirror the JSON the API returns.
package models
