package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/punter/pkg/filesystem"
)

// FileTree describes a directory layout: string values are file contents,
// FileTree values are subdirectories
type FileTree map[string]interface{}

// CreateTree writes tree under basePath, creating basePath if needed
func CreateTree(t *testing.T, fsys filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fsys.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := fsys.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// TempTree creates tree in a fresh temporary directory on disk and returns its path
func TempTree(t *testing.T, tree FileTree) string {
	t.Helper()
	dir := t.TempDir()
	CreateTree(t, filesystem.NewOS(), dir, tree)
	return dir
}
