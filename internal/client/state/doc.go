// Package state holds the request-state containers the views read from.
//
// A Container tracks one value, a Collection tracks a list of keyed records.
// Both move through Idle -> Pending -> Succeeded | Failed on every dispatch:
// Pending clears the previous error but keeps the previous data, and a
// failure keeps the data too, so a view can show stale content next to an
// error banner.
//
// Every dispatch takes a ticket. When two requests against the same
// container overlap, only the one dispatched last decides status and error.
// A fetch that resolves after a newer dispatch is discarded entirely.
// Mutation results (create, update, remove) are always applied to the data
// because the server has already acted on them.
//
// The per-domain stores (AuthStore, UserStore, ProjectStore, TimesheetStore,
// MetricsStore) bind containers to the services that feed them.
package state
