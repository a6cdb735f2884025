// Package geodb persists administrative division records in SQLite and
// exposes the read and upsert operations the HTTP API and the populate
// command need.
//
// The Store manages the database connection, applies embedded SQL migrations
// on open, and offers per-entity get-or-create semantics keyed by the
// canonical Uzbek Latin name. WithTx runs a callback against a transaction-
// bound Store so multi-entity population commits or rolls back as a unit.
//
// Treat this package as the single source of truth for storage semantics;
// schema changes are new files under migrations/.
package geodb
