package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/types"
)

// DefaultBasePath is used when -p/--path is not given
const DefaultBasePath = "."

// HomeFunc returns the user's home directory
type HomeFunc func() (string, error)

// GetHomeDirectory returns the user's home directory
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome replaces a leading "~" or "~/" with the home directory.
// Paths like "~user" are returned unchanged, as is everything when the home
// directory is unknown.
func ExpandHome(path string, home HomeFunc) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	homeDir, err := home()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}

// ResolveSyncOp applies defaults to the merged arguments and checks that
// source and destination are directories
func ResolveSyncOp(fsys filesystem.FS, ctx types.Context, home HomeFunc) (types.SyncOp, error) {
	src := ExpandHome(ctx.Args.Source, home)
	if src == "" {
		src = ctx.BasePath
	}
	if src == "" {
		src = DefaultBasePath
	}

	dest := ExpandHome(ctx.Args.Destination, home)
	if dest == "" {
		homeDir, err := home()
		if err != nil || homeDir == "" {
			noDest := errors.New(errors.ErrNoDestination,
				"home folder could not be found and no destination given")
			noDest.Wrapped = err
			return types.SyncOp{}, noDest
		}
		dest = homeDir
	}

	if !filesystem.IsDir(fsys, src) {
		return types.SyncOp{}, errors.Newf(errors.ErrSourceNotDir,
			"source with path %q is not a directory", src).WithDetail("path", src)
	}
	if !filesystem.IsDir(fsys, dest) {
		return types.SyncOp{}, errors.Newf(errors.ErrDestNotDir,
			"destination with path %q is not a directory", dest).WithDetail("path", dest)
	}

	return types.SyncOp{Source: src, Destination: dest}, nil
}

// ResolveLinks maps each [files] entry onto the sync directories, sorted by
// name. Entries must stay inside the source directory.
func ResolveLinks(ctx types.Context, op types.SyncOp, home HomeFunc) ([]types.Link, error) {
	names := make([]string, 0, len(ctx.File.Files))
	for name := range ctx.File.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	links := make([]types.Link, 0, len(names))
	for _, name := range names {
		src := filepath.Join(op.Source, name)
		if !ContainsPath(op.Source, src) {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"file %q points outside the source directory", name).WithDetail("name", name)
		}

		target := ExpandHome(ctx.File.Files[name].Target, home)
		if !filepath.IsAbs(target) {
			target = filepath.Join(op.Destination, target)
		}

		links = append(links, types.Link{Name: name, Source: src, Destination: target})
	}
	return links, nil
}

// ContainsPath reports whether child is parent or lies beneath it
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
