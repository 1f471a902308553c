// File: pkg/consolidate/patterns.go
package consolidate

import (
	"fmt"
	"regexp"
	"strings"
)

// SegmentPattern matches a single path segment name anywhere in a slash-separated path.
type SegmentPattern struct {
	Pattern *regexp.Regexp // Compiled, segment-anchored expression.
	Name    string         // Original excluded name.
}

// Precompiled regular expressions used in pattern parsing.
var (
	singleStarPattern = regexp.MustCompile(`\*`)
)

// compileSegmentPattern turns an excluded name into a regexp that matches any
// path having a segment equal to name. '*' and '?' keep their wildcard meaning
// within the segment; every other character is literal.
func compileSegmentPattern(name string) (*SegmentPattern, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("empty exclusion name")
	}
	if strings.Contains(trimmed, "/") {
		return nil, fmt.Errorf("exclusion name %q must be a single path segment", trimmed)
	}

	expr := wildcardToRegex(escapeSpecialChars(trimmed))
	compiled, err := regexp.Compile(anchorSegment(expr))
	if err != nil {
		return nil, fmt.Errorf("invalid exclusion name %q: %w", trimmed, err)
	}
	return &SegmentPattern{Pattern: compiled, Name: trimmed}, nil
}

// escapeSpecialChars escapes regex special characters except for '*' and '?'.
func escapeSpecialChars(pattern string) string {
	pattern = strings.ReplaceAll(pattern, `\`, `\\`)
	for _, char := range `.+()|^$[]{}` {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// wildcardToRegex converts wildcard patterns '*' and '?' to regex equivalents
// that never cross a segment boundary.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", "[^/]")
}

// anchorSegment anchors the expression to whole segments: preceded by the path
// start or a slash, followed by the path end or a slash.
func anchorSegment(pattern string) string {
	return "^(|.*/)" + pattern + "(/.*)?$"
}
