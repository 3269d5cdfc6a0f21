package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultScenarioPath = "tapline.yaml"

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default scenario file",
		Long: `Write the embedded demonstration scenario to path (default tapline.yaml,
or the --config flag). An existing file is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = defaultScenarioPath
			}

			created, err := newDependencies().Config.EnsureFile(path)
			if err != nil {
				return err
			}

			if quiet {
				return nil
			}
			if created {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Scenario written to %s\n", path)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Scenario already exists at %s\n", path)
			}
			return err
		},
	}

	return initCmd
}
