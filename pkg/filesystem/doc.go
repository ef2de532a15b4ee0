// Package filesystem provides the filesystem abstraction used by punter.
//
// Everything that touches the disk (config loading, path checks, directory
// enumeration, template writing) goes through FS so tests can point the
// code at a temporary tree.
package filesystem
