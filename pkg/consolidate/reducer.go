// File: pkg/consolidate/reducer.go
package consolidate

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// blockCommentPattern matches /* ... */ non-greedily, across line breaks.
var blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

// Reduce returns a minified form of content, chosen by the extension of path.
// JSON is compacted; everything else goes through StripComments. An empty
// result means nothing worth keeping remains.
func Reduce(path, content string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReduceJSON(content)
	}
	return StripComments(content)
}

// ReduceJSON removes insignificant whitespace from a JSON document, keeping key
// order and string escapes as written. Malformed JSON is only trimmed.
func ReduceJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(content)); err != nil {
		return strings.TrimSpace(content)
	}
	return buf.String()
}

// StripComments removes block comments, blank lines and lines starting with //,
// and trims every remaining line. Besides \n, the vertical tab, form feed,
// \x1c-\x1e, NEL and the Unicode line and paragraph separators end a line.
//
// The pass is purely textual: comment markers inside string literals are
// treated as comments too.
func StripComments(content string) string {
	content = blockCommentPattern.ReplaceAllString(content, "")

	var kept []string
	for _, line := range strings.FieldsFunc(content, isLineBreak) {
		line = strings.TrimFunc(line, isTrimSpace)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isTrimSpace extends unicode.IsSpace with the ASCII separators \x1c-\x1f.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}
