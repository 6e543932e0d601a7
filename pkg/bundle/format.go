package bundle

import (
	"fmt"
	"strings"
	"time"
)

// Bundle text markers. Consumers may rely on these to split a bundle back
// into its index and per-file chunks.
const (
	indexBeginMarker = "/* === CODEBASE INDEX === */"
	indexEndMarker   = "/* === END INDEX === */"
)

// IndexHeader renders the index segment: generation timestamp, total file
// count, and a numbered path (size) line per file, bounded by begin/end
// markers so it is unambiguous against file content.
func IndexHeader(files []CandidateFile, generated time.Time) string {
	var sb strings.Builder
	sb.WriteString(indexBeginMarker + "\n")
	fmt.Fprintf(&sb, "/* Generated: %s */\n", generated.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "/* Total Files: %d */\n\n", len(files))
	for i, f := range files {
		fmt.Fprintf(&sb, "/* %d. %s (%s) */\n", i+1, f.Path, HumanSize(f.SizeBytes))
	}
	sb.WriteString("\n" + indexEndMarker + "\n\n")
	return sb.String()
}

// FileSection wraps content between begin/end markers repeating the file's
// path. Content is terminated with exactly one newline before the end marker
// so the output splits mechanically.
func FileSection(path, content string) string {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return fmt.Sprintf("/* === BEGIN %s === */\n%s/* === END %s === */\n\n", path, content, path)
}

// HumanSize formats a byte count using binary units with one decimal place.
// Plain byte counts are printed without a decimal.
func HumanSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	for _, unit := range []string{"KB", "MB", "GB"} {
		value /= 1024
		if value < 1024 || unit == "GB" {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}
	return fmt.Sprintf("%d B", n) // unreachable
}
