package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	xgxresult "github.com/xgx-io/xgx-result"
	"github.com/xgx-io/xgx-result/internal/chainspec"
	"github.com/xgx-io/xgx-result/zerologx"
)

const (
	stdinName      = "-"
	causedByMarker = "--- Caused by: ---"
)

var renderCmd = &cobra.Command{
	Use:   "render [file...]",
	Short: "Render one report per YAML file (stdin when no file is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{stdinName}
		}

		diag := zerolog.Nop()
		if cfg.Verbose {
			diag = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
		}

		outcomes := make([]xgxresult.Of[xgxresult.Error], len(args))
		for i, name := range args {
			outcomes[i] = decodeSource(cmd.InOrStdin(), name)
			diag.Debug().Str("source", name).Object("outcome", zerologx.Outcome(outcomes[i])).Msg("decoded")
		}
		return writeOutcomes(cmd.OutOrStdout(), cfg, args, outcomes)
	},
}

// decodeSource reads one chain description. Decoding failures are returned
// as Failures so every source is reported.
func decodeSource(stdin io.Reader, name string) xgxresult.Of[xgxresult.Error] {
	if name == stdinName {
		return xgxresult.FromTuple[xgxresult.Error](chainspec.Decode(stdin))
	}
	f, err := os.Open(name)
	if err != nil {
		return xgxresult.Failure[xgxresult.Error](xgxresult.FromError(err))
	}
	defer f.Close()
	return xgxresult.FromTuple[xgxresult.Error](chainspec.Decode(f))
}

func writeOutcomes(w io.Writer, cfg *Config, names []string, outcomes []xgxresult.Of[xgxresult.Error]) error {
	var (
		failed  []error
		printed int
	)
	logger := zerolog.New(w)
	for i, o := range outcomes {
		described, ok := o.Get()
		if !ok {
			failed = append(failed, fmt.Errorf("%s: %w", names[i], o.ErrorOrZero().AsError()))
			continue
		}
		switch cfg.Output {
		case outputJSON:
			logger.Log().Str("source", names[i]).Object("error", zerologx.Object(described)).Send()
		default:
			report := described.String()
			if cfg.Color {
				report = colorize(report)
			}
			if printed > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintln(w, report)
			printed++
		}
	}
	return errors.Join(failed...)
}

var (
	headerColor = color.New(color.FgRed, color.Bold)
	markerColor = color.New(color.FgYellow)
	dataColor   = color.New(color.FgCyan)
)

// colorize highlights section headers, markers and data lines of a report.
func colorize(report string) string {
	for _, c := range []*color.Color{headerColor, markerColor, dataColor} {
		c.EnableColor()
	}
	lines := strings.Split(report, "\n")
	header := true
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- "):
			lines[i] = markerColor.Sprint(line)
			header = line == causedByMarker
			continue
		case header:
			lines[i] = headerColor.Sprint(line)
		case strings.HasPrefix(line, "Data: "):
			lines[i] = dataColor.Sprint(line)
		}
		header = false
	}
	return strings.Join(lines, "\n")
}
