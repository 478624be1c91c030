package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/scene"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Build scene files and verify the node trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args)
		},
	}
}

// runCheck builds and lays out every file, then compares each engine tree
// with its node tree. All files are checked even after a failure.
func (a *app) runCheck(paths []string) error {
	var errorCount int
	for _, path := range paths {
		a.logger.Debug("checking", "file", path)

		if err := checkFile(path); err != nil {
			a.logger.Error("check failed", "file", path, "err", err)
			errorCount++
			continue
		}
		fmt.Fprintf(a.stdout, "ok  %s\n", path)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func checkFile(path string) error {
	doc, err := scene.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := scene.Build(flex.NewEngine(), doc)
	if err != nil {
		return err
	}
	defer tree.Destroy()

	if err := tree.Layout(); err != nil {
		return err
	}
	return tree.Root.CheckConsistency()
}
