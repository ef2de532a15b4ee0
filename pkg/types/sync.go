package types

import (
	"fmt"
	"io/fs"
)

// SyncOp is the resolved (source, destination) directory pair of a sync
type SyncOp struct {
	Source      string
	Destination string
}

// Link is a planned association between a file in the source directory and
// its location in the destination directory
type Link struct {
	Name        string
	Source      string
	Destination string
}

// String returns "source -> destination"
func (l Link) String() string {
	return fmt.Sprintf("%s -> %s", l.Source, l.Destination)
}

// EntryKind classifies a directory entry
type EntryKind string

const (
	EntryFile    EntryKind = "file"
	EntryDir     EntryKind = "dir"
	EntrySymlink EntryKind = "symlink"
	EntryOther   EntryKind = "other"
)

// EntryKindOf returns the kind for a file mode type
func EntryKindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDir
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

// Entry is one direct entry of the source directory
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}
