// Package populate seeds the geodb store from the bundled YAML fixtures.
// Regions and districts come from fixture files; villages are a small
// illustrative sample attached to the first district. All writes for one run
// happen inside a single transaction.
package populate
