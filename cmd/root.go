package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Filtering
	excludePatterns string
	includeFiles    []string
	noIgnore        bool

	// Export
	outputFile      string
	copyToClipboard bool
	saveBundle      bool

	// Token counting
	countTokens    bool
	tokenizerModel string

	// Logging
	debugMode bool

	logger *zap.Logger
)

// RootCmd is the base command: bundling is the default action.
var RootCmd = &cobra.Command{
	Use:   "codebundle [directory]",
	Short: "codebundle concatenates a directory tree into one AI-ready text bundle",
	Long: `codebundle scans a directory tree, filters out noise (binaries, build
artifacts, hidden system files, user-supplied ignore patterns), and
concatenates the remaining text files into one structured, checksummed
bundle suitable for pasting into an AI assistant.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBundle,
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.Flags().StringVarP(&excludePatterns, "exclude", "e", "", "Additional ignore patterns (comma-separated, e.g. *.log,test_*)")
	RootCmd.Flags().StringSliceVar(&includeFiles, "include", nil, "Paths to force-include despite ignore rules")
	RootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")

	RootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the bundle to the specified file")
	RootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the bundle to the clipboard")
	RootCmd.Flags().BoolVar(&saveBundle, "save", false, "Save the bundle as codebase-<checksum>.txt in the current directory")

	RootCmd.Flags().BoolVar(&countTokens, "tokens", false, "Count tokens exactly with tiktoken in addition to the built-in estimate")
	RootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for the tiktoken tokenizer (e.g. gpt-4o)")

	RootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	viper.BindPFlag("exclude", RootCmd.Flags().Lookup("exclude"))
	viper.BindPFlag("no_ignore", RootCmd.Flags().Lookup("no-ignore"))
	viper.BindPFlag("clipboard", RootCmd.Flags().Lookup("clipboard"))
	viper.BindPFlag("tokens", RootCmd.Flags().Lookup("tokens"))
	viper.BindPFlag("model", RootCmd.Flags().Lookup("model"))

	viper.SetDefault("exclude", "")
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("clipboard", false)
	viper.SetDefault("tokens", false)
	viper.SetDefault("model", "")
}

// initConfig reads the config file and CODEBUNDLE_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "codebundle"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("CODEBUNDLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warn("Error reading config file", zap.Error(err))
		}
	}

	// Config and environment provide defaults for every bound key unless
	// the corresponding flag overrode them.
	if !RootCmd.Flags().Changed("exclude") {
		excludePatterns = viper.GetString("exclude")
	}
	if !RootCmd.Flags().Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !RootCmd.Flags().Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !RootCmd.Flags().Changed("tokens") {
		countTokens = viper.GetBool("tokens")
	}
	if !RootCmd.Flags().Changed("model") {
		tokenizerModel = viper.GetString("model")
	}
}

// splitPatterns splits a comma-separated pattern string, dropping empties.
func splitPatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(patterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
