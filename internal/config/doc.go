// Package config loads, normalizes, and validates uzbekistan configuration.
//
// The configuration file is the single required settings root: every other
// component gates its behavior on the [models], [views], [cache], and
// [prepopulate] tables defined here, so a missing file is a fatal
// ErrNotConfigured rather than a silent default.
//
// EnabledModels and EnabledViews derive the sets of enabled entity names from
// a configuration. Both are memoized in process-wide single-slot caches;
// callers that mutate configuration at runtime (tests, mainly) must call
// InvalidateEnabledSets between mutations.
package config
