// File: pkg/consolidate/walker.go
package consolidate

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WalkStats summarizes a completed traversal.
type WalkStats struct {
	Directories int // Directories successfully listed, root included.
	DirErrors   int // Directories that could not be listed.
	Files       int // Eligible files handed to the callback.
}

// frame is one directory on the traversal stack together with its listing cursor.
type frame struct {
	dir     string
	entries []os.DirEntry
	next    int
}

// Walk visits every eligible file below root in depth-first pre-order, following
// the directory listing order. Excluded entries are skipped and excluded
// directories are never opened. A directory that cannot be listed is logged and
// skipped. The walk stops early only when onFile returns an error.
func Walk(root string, filter PathFilter, onFile func(path string) error, logger *zap.Logger) (WalkStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var stats WalkStats
	logger.Debug("Starting tree walk", zap.String("root", root))

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("Error accessing directory", zap.String("directory", root), zap.Error(err))
		stats.DirErrors++
		return stats, nil
	}
	stats.Directories++
	stack := []frame{{dir: root, entries: entries}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		path := filepath.Join(top.dir, entry.Name())
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}
		if filter.ShouldExclude(relPath) {
			logger.Debug("Skipping excluded path", zap.String("path", relPath))
			continue
		}

		isDir, isFile := classifyEntry(path, entry, logger)
		switch {
		case isDir:
			children, err := os.ReadDir(path)
			if err != nil {
				logger.Warn("Error accessing directory", zap.String("directory", path), zap.Error(err))
				stats.DirErrors++
				continue
			}
			stats.Directories++
			stack = append(stack, frame{dir: path, entries: children})
		case isFile && filter.IsSourceFile(entry.Name()):
			stats.Files++
			if err := onFile(path); err != nil {
				return stats, err
			}
		}
	}

	logger.Debug("Completed tree walk",
		zap.Int("directories", stats.Directories),
		zap.Int("directoryErrors", stats.DirErrors),
		zap.Int("files", stats.Files))
	return stats, nil
}

// classifyEntry reports whether entry is a directory to descend into or a regular
// file. Symlinks count as files when they resolve to a regular file; symlinked
// directories are not followed.
func classifyEntry(path string, entry fs.DirEntry, logger *zap.Logger) (isDir, isFile bool) {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return true, false
	case mode.IsRegular():
		return false, true
	case mode&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			logger.Debug("Skipping dangling symlink", zap.String("path", path), zap.Error(err))
			return false, false
		}
		if info.IsDir() {
			logger.Debug("Not following symlinked directory", zap.String("path", path))
			return false, false
		}
		return false, info.Mode().IsRegular()
	}
	return false, false
}
