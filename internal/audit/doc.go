// Package audit provides the audit trail for zlang operations.
//
// Onboarding, recovery, saves, undos, imports, exports, profile switches and
// sync probes are each recorded as one line in audit.log under the data
// directory:
//
//	onboarded user at 2026-01-02T15:04:05.123456789Z
//	saved note at 2026-01-02T15:05:00Z
//
// Timestamps are RFC3339 with nanoseconds, UTC. The log rolls over at
// 1 MiB and keeps the three most recent rolled files.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display. Malformed lines are
// silently skipped to handle partial writes.
package audit
