package cmd

import (
	"context"
	"fmt"
	"os"

	"codebundle/pkg/bundle"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// runBundle scans the target directory, builds the bundle, and routes it to
// the selected export sink.
func runBundle(cmd *cobra.Command, args []string) error {
	if debugMode {
		if l, err := logging.Setup(true, "codebundle", version.Get().Version); err == nil {
			logger = l
		}
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	scan, err := bundle.Scan(dir, bundle.ScanOptions{
		UserPatterns:     splitPatterns(excludePatterns),
		RespectGitignore: !noIgnore,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	for _, path := range includeFiles {
		if !scan.SetIncluded(path, true) {
			logger.Warn("Cannot force-include path", zap.String("path", path))
		}
	}

	included := scan.Included()
	logger.Debug("Classification complete",
		zap.Int("candidates", len(scan.Files)),
		zap.Int("included", len(included)))
	if len(included) == 0 {
		fmt.Fprintln(os.Stderr, "No text files to bundle after filtering.")
		return nil
	}

	builder := bundle.NewBuilder(logger)
	showProgress := term.IsTerminal(int(os.Stderr.Fd()))
	builder.OnProgress = func(processed, total int64, current string) {
		if !showProgress {
			return
		}
		if total == 0 {
			total = 1
		}
		fmt.Fprintf(os.Stderr, "\r[%3d%%] %-60.60s", processed*100/total, current)
		if current == "Complete" {
			fmt.Fprintln(os.Stderr)
		}
	}

	result := builder.Build(context.Background(), included)

	printSummary(result)
	return export(result)
}

func printSummary(result bundle.Result) {
	fmt.Fprintf(os.Stderr, "Files: %d  Size: %s  Lines: %d  Est. tokens: %d\n",
		result.Stats.TotalFiles,
		bundle.HumanSize(result.Stats.TotalSizeBytes),
		result.Stats.LineCount,
		result.Stats.EstimatedTokens)
	fmt.Fprintf(os.Stderr, "Checksum: %s\n", result.ChecksumHex)

	if countTokens {
		tokenizer, err := bundle.NewTiktokenCounter(tokenizerModel)
		if err != nil {
			logger.Warn("Token counting disabled", zap.Error(err))
			return
		}
		defer tokenizer.Close()
		fmt.Fprintf(os.Stderr, "Tokens (tiktoken): %d\n", tokenizer.CountTokens(result.Content))
	}
}

// export routes the bundle to a file, the clipboard, or stdout. Clipboard
// failures fall back to stdout rather than aborting.
func export(result bundle.Result) error {
	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(os.Stderr, "Bundle saved to %s\n", outputFile)
	case saveBundle:
		path, err := bundle.WriteBundleFile(".", result, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Bundle saved to %s\n", path)
	case copyToClipboard:
		if err := bundle.CopyToClipboard(result.Content, logger); err != nil {
			logger.Warn("Clipboard unavailable, printing to stdout", zap.Error(err))
			fmt.Println(result.Content)
			return nil
		}
		fmt.Fprintln(os.Stderr, "Bundle copied to clipboard.")
	default:
		fmt.Println(result.Content)
	}
	return nil
}
