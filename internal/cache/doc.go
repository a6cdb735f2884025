// Package cache provides the TTL-bounded response cache and its health check.
//
// The default backend is an in-process ttlcache; the Backend interface keeps
// the store swappable and the failure paths testable. Check performs a
// sentinel write/read/delete round-trip against the backend on first use and
// memoizes the outcome: components downstream assume the cache is usable once
// the check passes, so any mismatch or backend failure surfaces as
// ErrMisconfigured rather than being swallowed.
package cache
