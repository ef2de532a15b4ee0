// Package paths resolves the directories a sync works on.
//
// It applies the built-in defaults (source = base path, destination = home
// directory), expands "~", and checks that both ends are directories before
// anything else runs.
package paths
