package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnoreDefaultDirectories(t *testing.T) {
	m := NewMatcher(nil)

	ignored := []string{
		"src/node_modules/x.js",
		"a/b/.git/config",
		"node_modules",
		"dist/index.js",
		"packages/app/build/main.css",
		"coverage/lcov.info",
		".next/server/page.js",
		"out/index.html",
		".cache/v1/data",
	}
	for _, path := range ignored {
		assert.True(t, m.ShouldIgnore(path, nil), "expected %q to be ignored", path)
	}

	kept := []string{
		"src/index.ts",
		"builder/main.go",        // "build" must match a whole segment
		"my_node_modules/x.js",   // not an exact segment match
		"distribution/readme.md", // same
	}
	for _, path := range kept {
		assert.False(t, m.ShouldIgnore(path, nil), "expected %q to be kept", path)
	}
}

func TestShouldIgnoreHiddenFiles(t *testing.T) {
	m := NewMatcher(nil)

	allowed := []string{
		".gitignore",
		".eslintrc.js",
		".prettierrc",
		".npmrc",
		".editorconfig",
		"src/.gitignore",
	}
	for _, path := range allowed {
		assert.False(t, m.ShouldIgnore(path, nil), "expected %q to be kept", path)
	}

	rejected := []string{
		".env",
		".env.local",
		".DS_Store",
		".secret",
	}
	for _, path := range rejected {
		assert.True(t, m.ShouldIgnore(path, nil), "expected %q to be ignored", path)
	}
}

func TestShouldIgnoreHiddenDirectories(t *testing.T) {
	m := NewMatcher(nil)

	assert.False(t, m.ShouldIgnore(".github/workflows/ci.yml", nil))
	assert.False(t, m.ShouldIgnore(".husky/pre-commit", nil))
	assert.True(t, m.ShouldIgnore(".vscode/settings.json", nil))
	assert.True(t, m.ShouldIgnore(".idea/workspace.xml", nil))
}

func TestShouldIgnoreWildcardPatterns(t *testing.T) {
	m := NewMatcher(nil)

	patterns := []string{"*.log"}
	assert.True(t, m.ShouldIgnore("app.log", patterns))
	assert.True(t, m.ShouldIgnore("logs/service.log", patterns))
	assert.False(t, m.ShouldIgnore("logger.ts", patterns))

	patterns = []string{"test_*"}
	assert.True(t, m.ShouldIgnore("test_utils.py", patterns))
	assert.False(t, m.ShouldIgnore("utils_test.py", patterns))
}

func TestShouldIgnoreWildcardCaseInsensitive(t *testing.T) {
	m := NewMatcher(nil)

	assert.True(t, m.ShouldIgnore("app.LOG", []string{"*.log"}))
	assert.True(t, m.ShouldIgnore("app.log", []string{"*.LOG"}))
}

func TestShouldIgnoreLiteralPatterns(t *testing.T) {
	m := NewMatcher(nil)

	// Default verdict, then with a literal substring pattern.
	assert.False(t, m.ShouldIgnore("src/utils.test.ts", nil))
	assert.True(t, m.ShouldIgnore("src/utils.test.ts", []string{"test"}))

	// Literal patterns also match whole directory segments.
	assert.True(t, m.ShouldIgnore("vendor/pkg/a.go", []string{"vendor"}))
	assert.False(t, m.ShouldIgnore("vendored/pkg/a.go", []string{"vendor"}))
}

func TestShouldIgnoreSlashPatterns(t *testing.T) {
	m := NewMatcher(nil)

	// A pattern with a slash is also tested against the full path.
	assert.True(t, m.ShouldIgnore("src/gen/api.ts", []string{"src/gen/*.ts"}))
	assert.False(t, m.ShouldIgnore("lib/gen/api.ts", []string{"src/gen/*.ts"}))
}

func TestShouldIgnoreDir(t *testing.T) {
	m := NewMatcher(nil)

	assert.True(t, m.ShouldIgnoreDir("node_modules", nil))
	assert.True(t, m.ShouldIgnoreDir("src/node_modules", nil))
	assert.True(t, m.ShouldIgnoreDir(".vscode", nil))
	assert.False(t, m.ShouldIgnoreDir(".github", nil))
	assert.False(t, m.ShouldIgnoreDir(".github/workflows", nil))
	assert.False(t, m.ShouldIgnoreDir("src", nil))

	// Exact literal patterns prune directories; wildcard and substring
	// patterns must not, since they only target filenames.
	assert.True(t, m.ShouldIgnoreDir("vendor", []string{"vendor"}))
	assert.False(t, m.ShouldIgnoreDir("vendored", []string{"vendor"}))
	assert.False(t, m.ShouldIgnoreDir("logs", []string{"*.log"}))
}

func TestShouldIgnoreEdgeCases(t *testing.T) {
	m := NewMatcher(nil)

	assert.False(t, m.ShouldIgnore("", nil))
	assert.True(t, m.ShouldIgnore(".", nil))
	assert.True(t, m.ShouldIgnore("..", nil))

	// Invalid patterns never match and never panic.
	assert.False(t, m.ShouldIgnore("main.go", []string{""}))
	assert.False(t, m.ShouldIgnore("main.go", []string{"   "}))
}
