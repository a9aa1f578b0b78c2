// Package server exposes the step codec over HTTP.
//
// Ownership boundary:
// - gin router, middleware and route wiring
// - request/response shapes for encode and decode
// - codec error to HTTP status mapping
package server
