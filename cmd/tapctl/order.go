package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func createOrderCmd() *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order [scenario]",
		Short: "Print the final tap order of a scenario",
		Long: `Register every step of a scenario without calling the hook and print
the resulting tap order.

Examples:
  tapctl order
  tapctl order -c scenario.yaml`,
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

			order, err := runner.Order(scenario)
			if err != nil {
				return fmt.Errorf("failed to order scenario: %w", err)
			}

			if !quiet {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))
			}
			return err
		},
	}

	return orderCmd
}
