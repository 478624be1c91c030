package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/scene"
)

func newLayoutCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Lay out a scene file and print the frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			f, err := scene.ParseFormat(format)
			if err != nil {
				return err
			}
			return a.runLayout(args[0], f, output)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml, toml or cbor (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func (a *app) runLayout(path string, format scene.Format, output string) error {
	doc, err := scene.ReadFile(path)
	if err != nil {
		return err
	}

	tree, err := scene.Build(flex.NewEngine(), doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer tree.Destroy()

	if err := tree.Layout(); err != nil {
		return err
	}
	snap, err := scene.Capture(tree)
	if err != nil {
		return err
	}
	a.logger.Debug("laid out scene", "file", path, "nodes", len(tree.Names()))

	if output == "" {
		if err := scene.Encode(a.stdout, snap, format); err != nil {
			return fmt.Errorf("encode %s: %w", format, err)
		}
		return nil
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeFrames(file, snap, format); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	a.logger.Info("wrote frames", "file", output, "format", format)
	return nil
}

// writeFrames encodes snap into wc and closes it, returning the close error.
func writeFrames(wc io.WriteCloser, snap scene.Snapshot, format scene.Format) error {
	if err := scene.Encode(wc, snap, format); err != nil {
		_ = wc.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return wc.Close()
}
