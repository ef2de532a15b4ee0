// Package testutil provides helpers for testing punter components.
//
//   - MemoryFS: an in-memory filesystem.FS with error injection
//   - FileTree: declarative directory layouts written to any filesystem.FS
package testutil
