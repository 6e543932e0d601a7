package bundle

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// defaultIgnoreDirs are directory names that are always excluded. A path is
// ignored when any of its segments equals one of these exactly.
var defaultIgnoreDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	".vercel":      true,
	"dist":         true,
	"build":        true,
	".turbo":       true,
	"coverage":     true,
	".nyc_output":  true,
	"out":          true,
	".cache":       true,
}

// hiddenFileAllowlist names hidden files that are kept despite the leading
// dot. A filename is allowed when it equals an entry exactly or extends it
// with a dotted suffix (".eslintrc.js"). ".env" is deliberately absent.
var hiddenFileAllowlist = []string{
	".gitignore",
	".gitattributes",
	".eslintrc",
	".prettierrc",
	".editorconfig",
	".npmrc",
	".nvmrc",
	".babelrc",
	".dockerignore",
}

// hiddenDirAllowlist names hidden directories whose contents stay visible.
var hiddenDirAllowlist = map[string]bool{
	".github": true,
	".husky":  true,
}

// Matcher decides whether a candidate path is excluded from bundling. The
// default rules are fixed; user patterns are supplied per call and matched as
// a set union, so pattern order never matters.
type Matcher struct {
	logger   *zap.Logger
	compiled map[string]*regexp.Regexp
}

// NewMatcher returns a Matcher. A nil logger is replaced with a no-op logger.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		logger:   logger,
		compiled: make(map[string]*regexp.Regexp),
	}
}

// ShouldIgnore reports whether path is excluded by the default directory
// rules, the user patterns, or the hidden-file policy. It never fails:
// patterns that cannot be compiled simply do not match.
func (m *Matcher) ShouldIgnore(path string, userPatterns []string) bool {
	if path == "" {
		return false
	}
	if path == "." || path == ".." {
		return true
	}

	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if defaultIgnoreDirs[seg] {
			return true
		}
	}

	name := segments[len(segments)-1]
	for _, pattern := range userPatterns {
		if m.matchesUserPattern(path, name, segments, pattern) {
			return true
		}
	}

	return hiddenIgnored(segments)
}

// ShouldIgnoreDir reports whether a directory path can be pruned from a
// scan outright. Pruning is only safe for rules that would also exclude
// every descendant: default directory names, exact literal segment matches,
// and the hidden-directory policy. Wildcard and filename-substring patterns
// stay per-file.
func (m *Matcher) ShouldIgnoreDir(path string, userPatterns []string) bool {
	if path == "" {
		return false
	}
	if path == "." || path == ".." {
		return true
	}

	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if defaultIgnoreDirs[seg] {
			return true
		}
	}

	for _, pattern := range userPatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.ContainsAny(pattern, ".*?") {
			continue
		}
		for _, seg := range segments {
			if seg == pattern {
				return true
			}
		}
	}

	for _, seg := range segments {
		if seg == "." || seg == ".." {
			return true
		}
		if strings.HasPrefix(seg, ".") && !hiddenDirAllowlist[seg] {
			return true
		}
	}
	return false
}

// matchesUserPattern applies a single user-supplied pattern. Patterns without
// a dot or wildcard are literal: they match as a directory name anywhere in
// the path or as a substring of the filename. Anything else compiles to a
// case-insensitive anchored wildcard tested against the filename, and against
// the full path as well when the pattern itself contains a slash.
func (m *Matcher) matchesUserPattern(path, name string, segments []string, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}

	if !strings.ContainsAny(pattern, ".*?") {
		for _, seg := range segments {
			if seg == pattern {
				return true
			}
		}
		return strings.Contains(name, pattern)
	}

	re := m.compileWildcard(pattern)
	if re == nil {
		return false
	}
	if re.MatchString(name) {
		return true
	}
	if strings.Contains(pattern, "/") && re.MatchString(path) {
		return true
	}
	return false
}

// compileWildcard converts a wildcard pattern into a case-insensitive
// anchored regular expression: '*' matches zero or more characters, '?'
// exactly one, and every other metacharacter is escaped. Compiled patterns
// are cached on the matcher.
func (m *Matcher) compileWildcard(pattern string) *regexp.Regexp {
	if re, ok := m.compiled[pattern]; ok {
		return re
	}

	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		m.logger.Warn("Invalid user ignore pattern",
			zap.String("pattern", pattern),
			zap.Error(err))
		m.compiled[pattern] = nil
		return nil
	}
	m.compiled[pattern] = re
	return re
}

// hiddenIgnored applies the hidden-file policy across path segments. The
// final segment is checked against the hidden-file allowlist, intermediate
// segments against the hidden-directory allowlist. Segment comparison is
// case-sensitive.
func hiddenIgnored(segments []string) bool {
	for i, seg := range segments {
		if seg == "." || seg == ".." {
			return true
		}
		if !strings.HasPrefix(seg, ".") {
			continue
		}
		if i == len(segments)-1 {
			if !allowedHiddenFile(seg) {
				return true
			}
		} else if !hiddenDirAllowlist[seg] {
			return true
		}
	}
	return false
}

func allowedHiddenFile(name string) bool {
	for _, allowed := range hiddenFileAllowlist {
		if name == allowed || strings.HasPrefix(name, allowed+".") {
			return true
		}
	}
	return false
}
