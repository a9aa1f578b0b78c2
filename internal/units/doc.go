// Package units normalizes user-facing durations and frequencies.
//
// Ownership boundary:
// - duration unit tags (us, ms, s) to integer microseconds
// - frequency unit tags (mHz, Hz) to floating hertz
package units
