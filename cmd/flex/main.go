// Package main provides the flex command for laying out scene files.
//
// Usage:
//
//	flex layout FILE         Lay out a scene and print every frame
//	flex check FILE...       Build scenes and verify tree consistency
//	flex version             Print version information
//
// Examples:
//
//	flex layout ui.toml                    Print frames as a tree
//	flex layout ui.yaml --format json      Print frames as JSON
//	flex layout ui.jsonc -f cbor -o ui.cbor
//	flex check -v scenes/*.toml
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *log.Logger
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var verbose bool
	a := &app{stdout: stdout}

	root := &cobra.Command{
		Use:           "flex",
		Short:         "Lay out flexbox scene files",
		Long:          "flex builds node trees described in TOML, YAML or JSON files, lays them out and prints the computed frames.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("log.level: %w", err)
			}
			if verbose {
				level = log.DebugLevel
			}
			a.cfg = cfg
			a.logger = newLogger(stderr, level)
			return nil
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flex version %s\n", version)
		},
	})

	return root.ExecuteContext(ctx)
}

// newLogger creates a logger with timestamp formatting, e.g. "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
