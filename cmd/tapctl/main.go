// Package main provides the command-line interface for tapline.
package main

import (
	"log"
	"os"

	"github.com/lerenn/tapline/pkg/config"
	"github.com/lerenn/tapline/pkg/dependencies"
	"github.com/lerenn/tapline/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// newDependencies builds the dependency container for the global flags.
func newDependencies() *dependencies.Dependencies {
	deps := dependencies.New()
	if verbose && !quiet {
		deps = deps.WithLogger(logger.NewWriterLogger(os.Stderr))
	}
	return deps
}

// loadScenario resolves the scenario from the positional argument, then the
// --config flag, then the embedded default.
func loadScenario(manager config.Manager, args []string) (config.Scenario, error) {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return manager.Default()
	}
	return manager.Load(path)
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "tapctl",
		Short: "Tapline - hook scenario runner",
		Long: `Register taps described in a scenario file against a hook, call it in ` +
			`sync, async or promise mode and print the order the taps ran in.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a scenario file path")

	rootCmd.AddCommand(createRunCmd(), createOrderCmd(), createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
