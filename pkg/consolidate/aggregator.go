// File: pkg/consolidate/aggregator.go
package consolidate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrAggregatorClosed is returned by Emit once Close has been called.
	ErrAggregatorClosed = errors.New("aggregator is closed")
	// ErrLocked is returned when another run holds the output lock.
	ErrLocked = errors.New("output is locked by another consolidation run")
)

// Aggregator writes blocks into a sequence of output parts, opening a new part
// whenever the next block would push a non-empty part past the ceiling.
// Only one part is open at a time. Not safe for concurrent use.
type Aggregator struct {
	cfg      Config
	logger   *zap.Logger
	progress io.Writer

	lock   *flock.Flock
	file   *os.File
	writer *bufio.Writer
	parts  []Part
	closed bool
}

// NewAggregator takes the output lock and opens part 1 immediately, so even a
// run that emits nothing leaves an empty first part behind.
func NewAggregator(cfg Config, logger *zap.Logger, progress io.Writer) (*Aggregator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if progress == nil {
		progress = io.Discard
	}
	if cfg.MaxPartSize <= 0 {
		return nil, fmt.Errorf("max part size must be positive, got %d", cfg.MaxPartSize)
	}

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			logger.Error("Failed to create output directory", zap.String("path", cfg.OutputDir), zap.Error(err))
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	a := &Aggregator{
		cfg:      cfg,
		logger:   logger,
		progress: progress,
		lock:     flock.New(filepath.Join(cfg.OutputDir, "."+cfg.BaseName+".lock")),
	}

	locked, err := a.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock output %s: %w", a.lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", a.lock.Path(), ErrLocked)
	}

	if err := a.openPart(1); err != nil {
		return nil, multierr.Append(err, a.releaseLock())
	}
	return a, nil
}

// PartPath returns the file name of part n: the base name for part 1 and
// "<base>_part<n>" for every later part.
func PartPath(cfg Config, n int) string {
	name := cfg.BaseName + cfg.OutputExt
	if n > 1 {
		name = fmt.Sprintf("%s_part%d%s", cfg.BaseName, n, cfg.OutputExt)
	}
	return filepath.Join(cfg.OutputDir, name)
}

// FormatBlock renders the header line and reduced content for one file.
func FormatBlock(b Block) string {
	return "\n// FILE: " + b.Path + "\n" + b.Content
}

// Emit writes the block for relPath. A block is never split: if it does not fit
// in a part that already holds data, a new part is opened first; a block larger
// than the ceiling still goes whole into the current part.
func (a *Aggregator) Emit(relPath, content string) error {
	if a.closed {
		return ErrAggregatorClosed
	}
	if content == "" {
		return nil
	}

	block := FormatBlock(Block{Path: relPath, Content: content})
	size := int64(len(block))

	current := &a.parts[len(a.parts)-1]
	if current.Size > 0 && current.Size+size > a.cfg.MaxPartSize {
		next := current.Number + 1
		if err := a.closePart(); err != nil {
			return err
		}
		if err := a.openPart(next); err != nil {
			return err
		}
		current = &a.parts[len(a.parts)-1]
	}

	if a.writer == nil {
		return fmt.Errorf("no open part for %s", relPath)
	}
	if _, err := a.writer.WriteString(block); err != nil {
		a.logger.Error("Failed to write block", zap.String("part", current.Path), zap.String("file", relPath), zap.Error(err))
		return fmt.Errorf("failed to write %s to %s: %w", relPath, current.Path, err)
	}
	current.Size += size

	if size > a.cfg.MaxPartSize {
		a.logger.Warn("Block exceeds part size ceiling and was written whole",
			zap.String("file", relPath),
			zap.Int64("blockBytes", size),
			zap.Int64("maxPartSize", a.cfg.MaxPartSize))
	}
	return nil
}

// Parts returns every part created so far, with its current byte count.
func (a *Aggregator) Parts() []Part {
	return append([]Part(nil), a.parts...)
}

// Close flushes and closes the open part and releases the output lock.
// It is safe to call more than once.
func (a *Aggregator) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return multierr.Append(a.closePart(), a.releaseLock())
}

// openPart creates part n and makes it current.
func (a *Aggregator) openPart(n int) error {
	path := PartPath(a.cfg, n)
	file, err := os.Create(path)
	if err != nil {
		a.logger.Error("Failed to create output part", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to create output part: %w", err)
	}

	a.file = file
	a.writer = bufio.NewWriter(file)
	a.parts = append(a.parts, Part{Number: n, Path: path})
	fmt.Fprintf(a.progress, "Creating new part: %s\n", path)
	a.logger.Debug("Opened output part", zap.String("path", path), zap.Int("part", n))
	return nil
}

// closePart flushes and closes the current part, if any.
func (a *Aggregator) closePart() error {
	if a.file == nil {
		return nil
	}
	path := a.file.Name()

	var err error
	if flushErr := a.writer.Flush(); flushErr != nil {
		err = multierr.Append(err, fmt.Errorf("failed to flush %s: %w", path, flushErr))
	}
	if closeErr := a.file.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
	}
	a.file = nil
	a.writer = nil

	if err != nil {
		a.logger.Error("Failed to close output part", zap.String("path", path), zap.Error(err))
		return err
	}
	a.logger.Debug("Closed output part", zap.String("path", path))
	return nil
}

// releaseLock releases the lock. The lock file is left in place so every run
// locks the same file.
func (a *Aggregator) releaseLock() error {
	if err := a.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release output lock: %w", err)
	}
	return nil
}
