// Command errchain renders YAML-described error chains the way xgxresult
// reports them, either as a text report or as a structured JSON log line.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("errchain failed")
		os.Exit(1)
	}
}
