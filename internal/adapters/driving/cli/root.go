// Package cli implements the plotline command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/plotline-labs/plotline-cli/internal/adapters/driven/storage/sqlite"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
	"github.com/plotline-labs/plotline-cli/internal/core/services"
	"github.com/plotline-labs/plotline-cli/internal/logger"
	"github.com/plotline-labs/plotline-cli/internal/normalisers"
)

var (
	// version is injected by Execute.
	version = "dev"

	verboseFlag bool
	dataDirFlag string

	// Services wired in Execute. Tests may swap these.
	chartBuilder       driving.ChartBuilder
	normaliserRegistry driven.NormaliserRegistry
)

var rootCmd = &cobra.Command{
	Use:   "plotline",
	Short: "Generate narrative chart datasets from novels and plays",
	Long: `Plotline scans a narrative text, splits it into sections on heading
lines, detects which characters appear in each section, and emits a
dataset for a narrative-chart renderer as JSON or as an HTML page.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "chart store directory (default ~/.plotline/data)")
}

// Execute wires the default services and runs the CLI.
func Execute(v string) error {
	version = v

	normaliserRegistry = normalisers.Defaults()
	chartBuilder = services.NewChartService(normaliserRegistry)

	return rootCmd.Execute()
}

// openChartStore opens the SQLite chart store at the configured
// data directory. Callers own the returned store and must close it.
func openChartStore() (driven.ChartStore, error) {
	return sqlite.NewChartStore(dataDirFlag)
}
