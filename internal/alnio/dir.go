package alnio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// ListFiles returns the regular files directly inside dir whose names end
// in suffix (case-sensitive), as absolute paths in directory listing
// order. An empty suffix matches every file. Symlinks to regular files
// are included.
func ListFiles(dir, suffix string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &sequence.InvalidPathError{Path: dir, Reason: "directory does not exist"}
	}
	if !info.IsDir() {
		return nil, &sequence.InvalidPathError{Path: dir, Reason: "not a directory"}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &sequence.InvalidPathError{Path: dir, Reason: err.Error()}
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, &sequence.InvalidPathError{Path: dir, Reason: err.Error()}
	}

	paths := make([]string, 0)
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		full := filepath.Join(abs, e.Name())
		if !e.Type().IsRegular() {
			if e.Type()&os.ModeSymlink == 0 {
				continue
			}
			fi, err := os.Stat(full)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		paths = append(paths, full)
	}
	return paths, nil
}

// DirLister lists files on the local file system.
type DirLister struct{}

// ListFiles implements stats.FileLister.
func (DirLister) ListFiles(dir, suffix string) ([]string, error) {
	return ListFiles(dir, suffix)
}
