// File: pkg/consolidate/config.go
package consolidate

// Default values used by DefaultConfig.
const (
	DefaultBaseName    = "consolidated_code"
	DefaultOutputExt   = ".txt"
	DefaultMaxPartSize = 500 * 1024 // 500 KB ceiling per output part
)

// DefaultAllowedExtensions lists the file suffixes selected for consolidation.
var DefaultAllowedExtensions = []string{".rs", ".toml", ".json", ".mjs", ".js", ".md", ".ts", ".svelte", ".html"}

// DefaultExcluded lists path segment names that are never read or descended into.
var DefaultExcluded = []string{
	"node_modules", ".git", ".next", "dist", "build", ".cache", "coverage",
	".vscode", ".idea", "consolidated_code", "consolidate.py", "consolidate.js",
	".env", ".env.local", ".env.production", ".env.development",
	"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "pnpm-workspace.yaml",
	"public", ".dockerignore", ".gitignore", "TODO.md", "__pycache__", "target",
}

// Config holds the fixed settings for one consolidation run.
// It is passed by value and never modified after construction.
type Config struct {
	Root              string   // Directory tree to consolidate.
	OutputDir         string   // Directory receiving the output parts.
	BaseName          string   // Output name without suffix or extension.
	OutputExt         string   // Extension appended to every part.
	AllowedExtensions []string // File suffixes eligible for consolidation.
	Excluded          []string // Path segment names pruned from the walk.
	MaxPartSize       int64    // Byte ceiling that triggers part rotation.
}

// DefaultConfig returns the built-in configuration rooted at root, writing parts to outputDir.
func DefaultConfig(root, outputDir string) Config {
	return Config{
		Root:              root,
		OutputDir:         outputDir,
		BaseName:          DefaultBaseName,
		OutputExt:         DefaultOutputExt,
		AllowedExtensions: append([]string(nil), DefaultAllowedExtensions...),
		Excluded:          append([]string(nil), DefaultExcluded...),
		MaxPartSize:       DefaultMaxPartSize,
	}
}

// Block is the reduced form of a single source file.
type Block struct {
	Path    string // Root-relative path, native separators.
	Content string // Reduced content; never empty when emitted.
}

// Part describes one output file in the bounded-size sequence.
type Part struct {
	Number int    // 1-based sequence number.
	Path   string // Location of the part on disk.
	Size   int64  // Bytes written to the part.
}
