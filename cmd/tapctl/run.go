package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrCallsFailed is returned by run --check when a hook call failed.
var ErrCallsFailed = errors.New("one or more hook calls failed")

var check bool

func createRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a scenario",
		Long: `Register every step of a scenario and call the hook after each one.

Without a scenario file the embedded demonstration is used.

Examples:
  tapctl run
  tapctl run scenario.toml --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := newDependencies()

			scenario, err := loadScenario(deps.Config, args)
			if err != nil {
				return err
			}

			runner, err := deps.NewRunner(verbose)
			if err != nil {
				return err
			}

			report, err := runner.Run(scenario)
			if err != nil {
				return fmt.Errorf("failed to run scenario: %w", err)
			}

			if !quiet {
				if err := report.Write(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			if check && report.Failed() {
				return ErrCallsFailed
			}
			return nil
		},
	}

	runCmd.Flags().BoolVar(&check, "check", false, "Exit with an error when any hook call failed")

	return runCmd
}
