// Package schedule implements conflict detection, remediation suggestions
// and utilization reporting for crew assignments. Every function is a pure
// computation over the snapshot passed in: no I/O, no shared state, safe for
// concurrent callers on distinct snapshots.
package schedule
