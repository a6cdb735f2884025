// Package httpapi serves the read-only division endpoints over HTTP. Routes
// are mounted from the endpoint registry, so a level that is switched off in
// configuration never gets a handler, and every mounted handler still
// re-verifies its model per request.
package httpapi
