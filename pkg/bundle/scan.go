package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// ScanOptions configures a directory scan.
type ScanOptions struct {
	UserPatterns     []string // User-supplied ignore patterns, unioned with the defaults.
	RespectGitignore bool     // Honor a .gitignore at the scan root.
	Logger           *zap.Logger
}

// ScanResult holds the candidate set for one scan. The set is owned by the
// caller for its selection lifetime; inclusion toggles mutate it until a
// bundling pass consumes it, and a new scan discards it entirely.
type ScanResult struct {
	Root  string
	Files []CandidateFile // Sorted by path.
}

// Scan walks root and produces the annotated candidate set: every regular
// file under root with its classifier verdict and default inclusion state.
// Directories yield no candidates. Entries that cannot be accessed are
// logged and skipped, never fatal.
func Scan(root string, opts ScanOptions) (*ScanResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to access scan root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", absRoot)
	}

	var repoIgnore gitignore.IgnoreMatcher
	if opts.RespectGitignore {
		gitIgnorePath := filepath.Join(absRoot, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				logger.Warn("Could not parse .gitignore, proceeding without it",
					zap.String("file", gitIgnorePath),
					zap.Error(err))
			} else {
				repoIgnore = matcher
			}
		}
	}

	matcher := NewMatcher(logger)
	result := &ScanResult{Root: absRoot}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during scan",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			logger.Warn("Failed to compute relative path",
				zap.String("path", path),
				zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matcher.ShouldIgnoreDir(rel, opts.UserPatterns) {
				logger.Debug("Skipping ignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			// go-gitignore resolves paths against the absolute root the
			// matcher was built from, so it gets the absolute walk path.
			if repoIgnore != nil && repoIgnore.Match(path, true) {
				logger.Debug("Skipping gitignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if repoIgnore != nil && repoIgnore.Match(path, false) {
			logger.Debug("Skipping gitignored file", zap.String("path", rel))
			return nil
		}

		fileInfo, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to stat file during scan",
				zap.String("path", rel),
				zap.Error(infoErr))
			return nil
		}

		size := fileInfo.Size()
		ignored := matcher.ShouldIgnore(rel, opts.UserPatterns)
		isText := IsTextCandidate(d.Name(), size)

		fullPath := path
		result.Files = append(result.Files, CandidateFile{
			Path:      rel,
			SizeBytes: size,
			Read: func() ([]byte, error) {
				return os.ReadFile(fullPath)
			},
			IsText:     isText,
			IsIncluded: !ignored && isText,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	logger.Debug("Scan completed",
		zap.String("root", absRoot),
		zap.Int("candidates", len(result.Files)))
	return result, nil
}

// Included returns the finally-included subset in lexicographic path order,
// ready for the builder: files that are both text and included.
func (r *ScanResult) Included() []CandidateFile {
	var included []CandidateFile
	for _, f := range r.Files {
		if f.IsIncluded && f.IsText {
			included = append(included, f)
		}
	}
	return included
}

// SetIncluded overrides the inclusion state for the candidate at path. It
// reports whether the path was found. Binary candidates cannot be force-
// included; the classifier verdict stands.
func (r *ScanResult) SetIncluded(path string, included bool) bool {
	for i := range r.Files {
		if r.Files[i].Path != path {
			continue
		}
		if included && !r.Files[i].IsText {
			return false
		}
		r.Files[i].IsIncluded = included
		return true
	}
	return false
}
