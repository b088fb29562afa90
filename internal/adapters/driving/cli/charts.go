package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/renderer"
)

var chartsRenderOutput string

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Manage saved charts",
	Long:  `List, show, render and delete datasets saved with build --save.`,
	RunE:  runChartsList,
}

var chartsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved charts",
	RunE:  runChartsList,
}

var chartsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a saved chart's dataset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartsShow,
}

var chartsRenderCmd = &cobra.Command{
	Use:   "render [id...]",
	Short: "Render saved charts to an HTML page",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChartsRender,
}

var chartsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartsDelete,
}

func init() {
	chartsRenderCmd.Flags().StringVarP(&chartsRenderOutput, "output", "o", "narrative_charts.html", "output HTML file")
	chartsCmd.AddCommand(chartsListCmd)
	chartsCmd.AddCommand(chartsShowCmd)
	chartsCmd.AddCommand(chartsRenderCmd)
	chartsCmd.AddCommand(chartsDeleteCmd)
	rootCmd.AddCommand(chartsCmd)
}

func runChartsList(cmd *cobra.Command, _ []string) error {
	store, err := openChartStore()
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		cmd.Println("No saved charts.")
		return nil
	}

	for _, summary := range summaries {
		cmd.Printf("%s  %s  %s\n",
			summary.ID,
			summary.CreatedAt.Local().Format("2006-01-02 15:04"),
			summary.Title)
	}
	return nil
}

func runChartsShow(cmd *cobra.Command, args []string) error {
	store, err := openChartStore()
	if err != nil {
		return err
	}
	defer store.Close()

	dataset, _, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling dataset: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runChartsRender(cmd *cobra.Command, args []string) error {
	store, err := openChartStore()
	if err != nil {
		return err
	}
	defer store.Close()

	datasets := make([]*domain.Dataset, 0, len(args))
	for _, id := range args {
		dataset, _, err := store.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		datasets = append(datasets, dataset)
	}

	html, err := renderer.NewHTML()
	if err != nil {
		return err
	}

	f, err := os.Create(chartsRenderOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", chartsRenderOutput, err)
	}
	defer f.Close()

	if err := html.Render(f, "", datasets); err != nil {
		return fmt.Errorf("rendering %s: %w", chartsRenderOutput, err)
	}

	cmd.PrintErrf("wrote %s\n", chartsRenderOutput)
	return nil
}

func runChartsDelete(cmd *cobra.Command, args []string) error {
	store, err := openChartStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("deleted chart %s\n", args[0])
	return nil
}
