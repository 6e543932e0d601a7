package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTextCandidateSizeCeiling(t *testing.T) {
	assert.True(t, IsTextCandidate("main.ts", MaxTextFileSize))
	assert.False(t, IsTextCandidate("main.ts", MaxTextFileSize+1))
	assert.False(t, IsTextCandidate("readme.md", 50*1024*1024))
}

func TestIsTextCandidateBinaryExtensions(t *testing.T) {
	for _, name := range []string{"logo.png", "archive.zip", "movie.mp4", "font.woff2", "app.exe", "doc.pdf"} {
		assert.False(t, IsTextCandidate(name, 100), "expected %q to be binary", name)
	}
	// Extension matching is case-folded.
	assert.False(t, IsTextCandidate("LOGO.PNG", 100))
}

func TestIsTextCandidateTextExtensions(t *testing.T) {
	for _, name := range []string{"main.ts", "readme.md", "data.json", "config.yml", "index.html", "style.css", "query.sql"} {
		assert.True(t, IsTextCandidate(name, 100), "expected %q to be text", name)
	}
}

func TestIsTextCandidateExtensionlessNames(t *testing.T) {
	for _, name := range []string{"README", "Dockerfile", "Makefile", "LICENSE", "CHANGELOG", "Procfile"} {
		assert.True(t, IsTextCandidate(name, 100), "expected %q to be text", name)
	}
	assert.False(t, IsTextCandidate("randomBinaryName", 100))
}

func TestIsTextCandidateUnknownExtensionDefaultsToBinary(t *testing.T) {
	assert.False(t, IsTextCandidate("data.xyz123", 100))
	// A dot disables the extension-less name heuristic.
	assert.False(t, IsTextCandidate("README.backup", 100))
}

func TestIsTextCandidateDotfiles(t *testing.T) {
	// Allow-listed hidden configs must survive classification; the matcher,
	// not the classifier, is what excludes .env.
	assert.True(t, IsTextCandidate(".gitignore", 100))
	assert.True(t, IsTextCandidate(".npmrc", 100))
	assert.True(t, IsTextCandidate(".editorconfig", 100))
}
