// Package consolidate walks a source tree, minifies eligible files and writes
// them into size-bounded output parts, each file preceded by a path header.
package consolidate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Result describes a finished consolidation run.
type Result struct {
	Parts      []Part    // Output parts in sequence order.
	Walk       WalkStats // Traversal counters.
	Blocks     int       // Files written to the output.
	Empty      int       // Files with nothing left after reduction.
	ReadErrors int       // Files that could not be read or decoded.
}

// Execute is the entry point for the consolidate package. It consolidates the
// directory holding the running executable into the current working directory.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	root, err := ExecutableDir()
	if err != nil {
		logger.Error("Failed to resolve executable directory", zap.Error(err))
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	outputDir, err := os.Getwd()
	if err != nil {
		logger.Error("Failed to resolve working directory", zap.Error(err))
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	if _, err := Run(DefaultConfig(root, outputDir), logger, os.Stdout); err != nil {
		logger.Error("Failed to execute consolidation", zap.Error(err))
		return fmt.Errorf("consolidation failed: %w", err)
	}
	return nil
}

// ExecutableDir returns the directory of the running executable with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

// Run consolidates cfg.Root into output parts, printing progress and the final
// summary to out. Unreadable directories and files are logged and skipped;
// only output errors abort the run, after the open part has been closed.
func Run(cfg Config, logger *zap.Logger, out io.Writer) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	startTime := time.Now()

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.String("root", cfg.Root), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	cfg.Root = root

	filter, err := NewFilter(cfg)
	if err != nil {
		return Result{}, err
	}

	ReportStart(out, cfg)
	logger.Info("Starting consolidation",
		zap.String("root", cfg.Root),
		zap.String("outputDir", cfg.OutputDir),
		zap.Int64("maxPartSize", cfg.MaxPartSize))

	agg, err := NewAggregator(cfg, logger, out)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open output: %w", err)
	}
	defer agg.Close()

	var result Result
	result.Walk, err = Walk(cfg.Root, filter, func(path string) error {
		relPath, relErr := filepath.Rel(cfg.Root, path)
		if relErr != nil {
			relPath = path
		}

		content, err := ReadText(path)
		if err != nil {
			logger.Warn("Error reading/processing file", zap.String("file", path), zap.Error(err))
			result.ReadErrors++
			return nil
		}

		reduced := Reduce(path, content)
		if reduced == "" {
			logger.Debug("Nothing left after reduction", zap.String("file", relPath))
			result.Empty++
			return nil
		}

		if err := agg.Emit(relPath, reduced); err != nil {
			return err
		}
		result.Blocks++
		return nil
	}, logger)
	if err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}

	if err := agg.Close(); err != nil {
		return result, fmt.Errorf("failed to close output: %w", err)
	}
	result.Parts = agg.Parts()

	Report(out, result.Parts)
	logger.Info("Consolidation completed",
		zap.Int("parts", len(result.Parts)),
		zap.Int("files", result.Blocks),
		zap.Int("emptyFiles", result.Empty),
		zap.Int("readErrors", result.ReadErrors),
		zap.Int("directoryErrors", result.Walk.DirErrors),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}
