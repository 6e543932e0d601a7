package bundle

import "strings"

// MaxTextFileSize is the hard size ceiling above which a file is classified
// binary regardless of its extension.
const MaxTextFileSize = 1 << 20 // 1,048,576 bytes

// IsTextCandidate reports whether a file is safe and meaningful to include
// as text. The function is pure and total; absence of information defaults
// to exclusion so unreadable content never corrupts a bundle.
func IsTextCandidate(name string, sizeBytes int64) bool {
	if sizeBytes > MaxTextFileSize {
		return false
	}

	lower := strings.ToLower(name)
	if idx := strings.LastIndex(lower, "."); idx >= 0 {
		ext := lower[idx+1:]
		if BinaryExtensions[ext] {
			return false
		}
		if TextExtensions[ext] {
			return true
		}
		// Unknown extension: default to binary.
		return false
	}

	// No extension at all: fall back to conventional text filenames.
	for _, base := range textBasenames {
		if strings.Contains(lower, base) {
			return true
		}
	}
	return false
}
