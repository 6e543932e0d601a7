package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ClipboardWarnBytes is the soft threshold above which clipboard placement
// is still attempted but flagged to the user.
const ClipboardWarnBytes = 150 * 1024

// CopyToClipboard places content on the system clipboard. Oversized content
// is warned about, not rejected. The returned error signals that the caller
// should fall back to another sink.
func CopyToClipboard(content string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(content) > ClipboardWarnBytes {
		logger.Warn("Bundle exceeds recommended clipboard size",
			zap.Int("sizeBytes", len(content)),
			zap.Int("thresholdBytes", ClipboardWarnBytes))
	}
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// SuggestedFilename derives the bundle filename from its checksum:
// codebase-<first 8 hex chars>.txt.
func SuggestedFilename(checksumHex string) string {
	short := checksumHex
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("codebase-%s.txt", short)
}

// WriteBundleFile saves the bundle under dir using the checksum-derived
// filename and returns the written path.
func WriteBundleFile(dir string, res Result, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := filepath.Join(dir, SuggestedFilename(res.ChecksumHex))
	if err := os.WriteFile(path, []byte(res.Content), 0o644); err != nil {
		logger.Error("Failed to write bundle file",
			zap.String("path", path),
			zap.Error(err))
		return "", fmt.Errorf("failed to write bundle file: %w", err)
	}
	logger.Debug("Wrote bundle file",
		zap.String("path", path),
		zap.Int("sizeBytes", len(res.Content)))
	return path, nil
}
