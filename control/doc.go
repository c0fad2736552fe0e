// Package control
// Author: momentics <momentics@gmail.com>
//
// Process-wide settings and debug introspection for programs built on the
// container packages.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot reads and validated updates of Settings
//   - Reload listeners, including the one driving the logging threshold
//   - Named debug probes that report container state
package control
