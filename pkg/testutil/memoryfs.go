package testutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements filesystem.FS with in-memory storage.
// Paths are cleaned and made absolute against "/".
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// Error injection
	errorPaths map[string]error
}

type memNode struct {
	mode    fs.FileMode
	modTime time.Time
	content []byte
}

// NewMemoryFS creates an empty in-memory filesystem holding only "/"
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {mode: fs.ModeDir | 0755, modTime: time.Now()},
		},
		errorPaths: make(map[string]error),
	}
}

func clean(name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join("/", name)
	}
	return filepath.Clean(name)
}

// WithError makes every operation on path fail with err
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[clean(path)] = err
	return m
}

func (m *MemoryFS) lookup(op, name string) (string, *memNode, error) {
	p := clean(name)
	if err, ok := m.errorPaths[p]; ok {
		return p, nil, &fs.PathError{Op: op, Path: name, Err: err}
	}
	node, ok := m.nodes[p]
	if !ok {
		return p, nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return p, node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, node, err := m.lookup("stat", name)
	if err != nil {
		return nil, err
	}
	return &memInfo{name: filepath.Base(p), node: node}, nil
}

// Lstat is Stat: MemoryFS has no symlinks
func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	return m.Stat(name)
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.lookup("read", name)
	if err != nil {
		return nil, err
	}
	if node.mode.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}
	return append([]byte(nil), node.content...), nil
}

// WriteFile creates or replaces a file. The parent directory must exist.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := clean(name)
	if err, ok := m.errorPaths[p]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	if !parent.mode.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("not a directory")}
	}
	if existing, ok := m.nodes[p]; ok && existing.mode.IsDir() {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	m.nodes[p] = &memNode{
		mode:    perm.Perm(),
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := clean(path)
	var missing []string
	for cur := p; ; cur = filepath.Dir(cur) {
		if err, ok := m.errorPaths[cur]; ok {
			return &fs.PathError{Op: "mkdir", Path: cur, Err: err}
		}
		if node, ok := m.nodes[cur]; ok {
			if !node.mode.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: errors.New("not a directory")}
			}
			break
		}
		missing = append(missing, cur)
	}

	for _, dir := range missing {
		m.nodes[dir] = &memNode{mode: fs.ModeDir | perm.Perm(), modTime: time.Now()}
	}
	return nil
}

// ReadDir returns the direct children of name sorted by file name
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, node, err := m.lookup("readdir", name)
	if err != nil {
		return nil, err
	}
	if !node.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	prefix := strings.TrimSuffix(p, "/") + "/"
	var entries []fs.DirEntry
	for childPath, child := range m.nodes {
		if childPath == p || !strings.HasPrefix(childPath, prefix) {
			continue
		}
		rest := strings.TrimPrefix(childPath, prefix)
		if strings.Contains(rest, "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(&memInfo{name: rest, node: child}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// memInfo implements fs.FileInfo
type memInfo struct {
	name string
	node *memNode
}

func (fi *memInfo) Name() string       { return fi.name }
func (fi *memInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *memInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi *memInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *memInfo) IsDir() bool        { return fi.node.mode.IsDir() }
func (fi *memInfo) Sys() interface{}   { return nil }
