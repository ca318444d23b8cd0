package testutil

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// Snapshot fingerprints every entry under root: type, mode, mtime, content
// hash for files and link value for symlinks. Two equal snapshots mean
// nothing under root was touched.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}

		rel, _ := filepath.Rel(root, path)
		entry := fmt.Sprintf("%s|%d", info.Mode(), info.ModTime().UnixNano())

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			value, err := os.Readlink(path)
			if err != nil {
				return err
			}
			entry += "|link:" + value
		case info.Mode().IsRegular():
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entry += fmt.Sprintf("|sha:%x", sha256.Sum256(content))
		}

		snap[rel] = entry
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return snap
}
