// Package logging constructs slog loggers from application configuration.
//
// Two formats are supported: "console" for human-readable output and "json"
// for machine ingestion. Field helpers alias the slog attribute constructors
// so call sites stay terse, and FromContext/WithContext carry a
// request-scoped logger through handler chains.
package logging
