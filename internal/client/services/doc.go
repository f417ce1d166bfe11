// Package services contains the domain services of the timesheets client.
//
// Each service is a thin, stateless wrapper over client.Client that knows
// the REST endpoints of one resource. Services validate input locally where
// a form would (required fields, password confirmation) and otherwise pass
// errors through unchanged so the state layer can record them. Nothing is
// retried or cached here.
package services
