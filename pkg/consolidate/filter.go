// File: pkg/consolidate/filter.go
package consolidate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PathFilter decides which filesystem entries take part in a consolidation.
type PathFilter interface {
	IsSourceFile(name string) bool
	ShouldExclude(relPath string) bool
}

// Filter selects files by extension and prunes paths containing an excluded segment.
type Filter struct {
	extensions []string
	excluded   []*SegmentPattern
}

// NewFilter compiles the extension allow-list and exclusion names from cfg.
func NewFilter(cfg Config) (*Filter, error) {
	f := &Filter{
		extensions: append([]string(nil), cfg.AllowedExtensions...),
	}
	for _, name := range cfg.Excluded {
		p, err := compileSegmentPattern(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile exclusion list: %w", err)
		}
		f.excluded = append(f.excluded, p)
	}
	return f, nil
}

// IsSourceFile reports whether name ends with one of the allowed extensions.
// The comparison is case-sensitive.
func (f *Filter) IsSourceFile(name string) bool {
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ShouldExclude reports whether any segment of the root-relative path equals an excluded name.
func (f *Filter) ShouldExclude(relPath string) bool {
	_, excluded := f.MatchExcluded(relPath)
	return excluded
}

// MatchExcluded is ShouldExclude that also returns the excluded name responsible for the match.
func (f *Filter) MatchExcluded(relPath string) (string, bool) {
	normalized := filepath.ToSlash(relPath)
	for _, p := range f.excluded {
		if p.Pattern.MatchString(normalized) {
			return p.Name, true
		}
	}
	return "", false
}
