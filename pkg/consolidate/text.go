// File: pkg/consolidate/text.go
package consolidate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned when a file matching an allowed extension is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// lineEndings converts CRLF and lone CR line breaks to LF.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadText reads the file at path as UTF-8 text with normalized line endings.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error decoding file %s: %w", path, ErrNotText)
	}
	return lineEndings.Replace(string(data)), nil
}
