package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	bookfile "github.com/plotline-labs/plotline-cli/internal/adapters/driven/config/file"
	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
	"github.com/plotline-labs/plotline-cli/internal/logger"
	"github.com/plotline-labs/plotline-cli/internal/renderer"
)

var (
	buildInput      string
	buildTitle      string
	buildDelimiter  string
	buildGroups     []string
	buildMatch      string
	buildIgnoreCase bool
	buildGini       float64
	buildPanels     int
	buildOutput     string
	buildFormat     string
	buildBookfile   string
	buildSave       bool
	buildWatch      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a narrative chart dataset from a book",
	Long: `Runs the charting pipeline on one book (flags) or several (--bookfile):
split the text into sections on heading lines, detect which character
groups appear in each section, and emit the dataset.

Character groups are repeatable; aliases within a group are separated
by commas or pipes and all map to one chart entity:

  plotline build -i novel.txt -g Alice -g "Clark Kent|Superman"`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInput, "input", "i", "", "input file (.txt, .md, .html, .pdf, .docx)")
	buildCmd.Flags().StringVarP(&buildTitle, "title", "t", "", "book title (defaults to a title derived from the input)")
	buildCmd.Flags().StringVarP(&buildDelimiter, "delimiter", "d", "", "section heading pattern (default matches Chapter N, Prologue, etc.)")
	buildCmd.Flags().StringArrayVarP(&buildGroups, "character-group", "g", nil, "character group spec; repeatable")
	buildCmd.Flags().StringVar(&buildMatch, "match", string(driving.MatchSubstring), "alias matching: substring or regex")
	buildCmd.Flags().BoolVar(&buildIgnoreCase, "ignore-case", false, "fold case when matching aliases")
	buildCmd.Flags().Float64Var(&buildGini, "gini", 1.0, "panel weighting: 1.0 by word count, 0.0 even per section")
	buildCmd.Flags().IntVar(&buildPanels, "panels", 0, "panel budget (default 500)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file (default stdout for json, narrative_charts.html for html)")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "json", "output format: json or html")
	buildCmd.Flags().StringVar(&buildBookfile, "bookfile", "", "TOML book file declaring one or more books")
	buildCmd.Flags().BoolVar(&buildSave, "save", false, "save the dataset(s) to the chart store")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild whenever an input file changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	requests, err := buildRequests()
	if err != nil {
		return err
	}

	if err := buildOnce(cmd, requests); err != nil {
		return err
	}

	if buildWatch {
		return watchAndRebuild(cmd, requests)
	}
	return nil
}

// buildRequests assembles the book requests from --bookfile or from
// the single-book flags.
func buildRequests() ([]driving.BookRequest, error) {
	if buildBookfile != "" {
		bf, err := bookfile.Load(buildBookfile)
		if err != nil {
			return nil, err
		}
		return bf.Requests()
	}

	if buildInput == "" {
		return nil, errors.New("either --input or --bookfile is required")
	}

	groups := make([]domain.CharacterGroup, 0, len(buildGroups))
	for id, spec := range buildGroups {
		group, err := domain.NewGroupFromSpec(id, spec)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	gini := buildGini
	return []driving.BookRequest{{
		Title:      buildTitle,
		Path:       buildInput,
		Delimiter:  buildDelimiter,
		Groups:     groups,
		Match:      driving.MatchMode(buildMatch),
		IgnoreCase: buildIgnoreCase,
		Panels:     buildPanels,
		Gini:       &gini,
	}}, nil
}

// buildOnce runs the pipeline for every request and writes the output.
func buildOnce(cmd *cobra.Command, requests []driving.BookRequest) error {
	ctx := cmd.Context()

	datasets := make([]*domain.Dataset, 0, len(requests))
	for _, req := range requests {
		dataset, err := chartBuilder.Build(ctx, req)
		if err != nil {
			return err
		}
		datasets = append(datasets, dataset)
	}

	if buildSave {
		if err := saveDatasets(ctx, cmd, datasets); err != nil {
			return err
		}
	}

	return writeOutput(cmd, datasets)
}

func saveDatasets(ctx context.Context, cmd *cobra.Command, datasets []*domain.Dataset) error {
	store, err := openChartStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, dataset := range datasets {
		id, err := store.Save(ctx, dataset)
		if err != nil {
			return fmt.Errorf("saving %q: %w", dataset.Title, err)
		}
		cmd.PrintErrf("saved chart %s (%s)\n", id, dataset.Title)
	}
	return nil
}

func writeOutput(cmd *cobra.Command, datasets []*domain.Dataset) error {
	switch buildFormat {
	case "json":
		return writeJSON(cmd, datasets)
	case "html":
		return writeHTML(cmd, datasets)
	default:
		return fmt.Errorf("unknown format %q (want json or html)", buildFormat)
	}
}

func writeJSON(cmd *cobra.Command, datasets []*domain.Dataset) error {
	var payload any = datasets
	if len(datasets) == 1 {
		payload = datasets[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling dataset: %w", err)
	}

	if buildOutput == "" {
		cmd.Println(string(data))
		return nil
	}
	return os.WriteFile(buildOutput, append(data, '\n'), 0644)
}

func writeHTML(cmd *cobra.Command, datasets []*domain.Dataset) error {
	html, err := renderer.NewHTML()
	if err != nil {
		return err
	}

	out := buildOutput
	if out == "" {
		out = "narrative_charts.html"
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	pageTitle := buildTitle
	if len(datasets) > 1 {
		pageTitle = ""
	}
	if err := html.Render(f, pageTitle, datasets); err != nil {
		return fmt.Errorf("rendering %s: %w", out, err)
	}

	cmd.PrintErrf("wrote %s\n", out)
	return nil
}

// watchAndRebuild re-runs the pipeline whenever an input file changes,
// until interrupted.
func watchAndRebuild(cmd *cobra.Command, requests []driving.BookRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, req := range requests {
		if err := watcher.Add(req.Path); err != nil {
			return fmt.Errorf("watching %s: %w", req.Path, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.PrintErrln("watching for changes; press Ctrl-C to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed: %s", event.Name)
			if err := buildOnce(cmd, requests); err != nil {
				// Keep watching; a half-written file often fails once.
				cmd.PrintErrf("rebuild failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
