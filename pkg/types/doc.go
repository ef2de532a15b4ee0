// Package types defines the core types and interfaces used throughout punter.
// This includes the Command and Action interfaces of the sync pipeline, the
// merged Context handed to a command, and the SyncOp and Link values that
// describe what a sync covers.
package types
