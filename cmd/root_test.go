package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitConfigEnvironmentOverrides(t *testing.T) {
	logger = zap.NewNop()

	// Keep stray config files in HOME or the working directory out of the test.
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	t.Setenv("CODEBUNDLE_EXCLUDE", "*.log,tmp")
	t.Setenv("CODEBUNDLE_NO_IGNORE", "true")
	t.Setenv("CODEBUNDLE_CLIPBOARD", "true")
	t.Setenv("CODEBUNDLE_TOKENS", "true")
	t.Setenv("CODEBUNDLE_MODEL", "gpt-4o")

	initConfig()

	// Every bound key must reach its flag variable when the flag is unset.
	assert.Equal(t, "*.log,tmp", excludePatterns)
	assert.True(t, noIgnore)
	assert.True(t, copyToClipboard)
	assert.True(t, countTokens)
	assert.Equal(t, "gpt-4o", tokenizerModel)
}

func TestSplitPatterns(t *testing.T) {
	assert.Nil(t, splitPatterns(""))
	assert.Equal(t, []string{"*.log", "tmp"}, splitPatterns("*.log, tmp,"))
}
