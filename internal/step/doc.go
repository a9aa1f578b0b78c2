// Package step owns the Chrolis protocol step model and its CSV codec.
//
// Ownership boundary:
// - step entity and structural validation
// - parameter derivation (frequency, durations -> pulse tuple)
// - csv line encoding and decoding, human-readable description
// - raw form input parsing
package step
