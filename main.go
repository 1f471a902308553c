package main

import (
	"log"
	"os"
	"strings"

	"codepack/cmd"
	"codepack/pkg/logging"
	"codepack/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "codepack", version.Version); err != nil {
		log.Printf("Failed to initialize logger, using fallback: %v", err)
	}
	logger := logging.Logger

	if err := cmd.Execute(logger); err != nil {
		syncLogger(logger)
		logger.Fatal("codepack execution failed", zap.Error(err))
	}
	syncLogger(logger)
}

// syncLogger flushes the logger when stderr supports it. Sync on a terminal or
// pipe commonly fails with "invalid argument", which is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
