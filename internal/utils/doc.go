// Package utils provides shared utility functions for zlang.
//
// # Filesystem Utilities
//
//   - WriteFileAtomic: temp file, fsync, rename; used for every persisted blob
//   - FileExists: stat-based existence check
//
// # String Utilities
//
//   - ParseTags: splits "a, b,c" into tags
//   - SanitizeProfileName: normalizes a free-form profile name
//
// # I/O Utilities
//
//   - ReadStdin: reads a piped note value
//   - Prompter: line-based prompts used by onboarding and recovery
//
// # Terminal Utilities
//
//   - IsTerminal / IsStdoutTerminal: terminal detection
package utils
