// Package commands implements punter's commands on top of a two-phase
// pipeline.
//
// A Command first prepares: it inspects the merged Context and the
// filesystem and returns the list of Actions to run, without changing
// anything. Run then executes those actions one at a time and stops at the
// first failure. There is no rollback.
//
// The set of commands is closed: New maps a CommandType to its
// implementation.
package commands
