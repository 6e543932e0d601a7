package main

import (
	"log"
	"os"
	"strings"

	"codebundle/cmd"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"

	"golang.org/x/term"
)

func main() {
	logger, err := logging.Setup(false, "codebundle", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		os.Exit(1)
	}

	// Syncing stderr fails with "invalid argument" on some platforms when it
	// is neither a terminal nor a regular file.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
