package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"

	envPrefix = "ERRCHAIN"
)

// Config holds the effective settings after flags, environment and defaults
// are merged.
type Config struct {
	Output  string
	Color   bool
	Verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "errchain",
	Short: "Render error chains described in YAML",
	Long: `errchain reads a YAML description of an error chain and prints it
as an xgxresult report (text) or as a structured log line (json).

Settings can also come from the environment:
  ERRCHAIN_OUTPUT   text | json
  ERRCHAIN_COLOR    colorize text headers
  ERRCHAIN_VERBOSE  log decoding steps to stderr`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", outputText, "Output format (text, json)")
	rootCmd.PersistentFlags().Bool("color", false, "Colorize text output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log decoding steps to stderr")

	rootCmd.AddCommand(renderCmd)
}

// loadConfig merges cmd's flags with ERRCHAIN_* environment variables.
// Explicitly set flags win over the environment.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := &Config{
		Output:  strings.ToLower(v.GetString("output")),
		Color:   v.GetBool("color"),
		Verbose: v.GetBool("verbose"),
	}
	switch cfg.Output {
	case outputText, outputJSON:
	default:
		return nil, fmt.Errorf("invalid output format %q (want %s or %s)", cfg.Output, outputText, outputJSON)
	}
	return cfg, nil
}
