// Package observability owns process logging bootstrap, HTTP request
// logging and prometheus metrics.
package observability
