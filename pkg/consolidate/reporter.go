// File: pkg/consolidate/reporter.go
package consolidate

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	headingColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	pathColor    = color.New(color.FgCyan)
)

// bytePrinter groups digits with commas, e.g. 12,345.
var bytePrinter = message.NewPrinter(language.English)

// ReportStart prints the banner shown before traversal begins.
func ReportStart(w io.Writer, cfg Config) {
	fmt.Fprintf(w, "Starting MINIFIED consolidation from: %s\n", cfg.Root)
	fmt.Fprintf(w, "Max size per file: %.1f KB\n", float64(cfg.MaxPartSize)/1024)
}

// Report prints the final summary for the parts produced by a run.
// A single empty part is reported as "No content found.".
func Report(w io.Writer, parts []Part) {
	fmt.Fprintln(w, strings.Repeat("-", 30))

	switch {
	case len(parts) == 0 || (len(parts) == 1 && parts[0].Size == 0):
		warnColor.Fprintln(w, "No content found.")
	case len(parts) == 1:
		headingColor.Fprintln(w, "Consolidation complete!")
		fmt.Fprintf(w, "Single MINIFIED file: %s\n", pathColor.Sprint(parts[0].Path))
		fmt.Fprintf(w, "Final size: %s\n", FormatSize(parts[0].Size))
	default:
		headingColor.Fprintf(w, "Consolidation complete! Split into %d files:\n", len(parts))
		var total int64
		for _, p := range parts {
			total += p.Size
			fmt.Fprintf(w, "  %s → %s\n", pathColor.Sprint(p.Path), FormatSize(p.Size))
		}
		fmt.Fprintf(w, "Total consolidated size: %s\n", FormatSize(total))
	}
}

// FormatSize renders n as kilobytes with two decimals followed by the exact byte count.
func FormatSize(n int64) string {
	return fmt.Sprintf("%.2f KB (%s bytes)", float64(n)/1024, bytePrinter.Sprintf("%d", n))
}
