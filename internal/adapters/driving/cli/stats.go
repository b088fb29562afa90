package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
	"github.com/plotline-labs/plotline-cli/internal/core/services"
)

var (
	statsDelimiter  string
	statsGroups     []string
	statsMatch      string
	statsIgnoreCase bool
)

// Styles for the stats listing.
var (
	statsTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	statsSectionStyle = lipgloss.NewStyle().Bold(true)
	statsMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show per-section word and character counts",
	Long: `Splits the book into sections and prints each section's word count
and the characters detected in it, without emitting a dataset.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsDelimiter, "delimiter", "d", "", "section heading pattern")
	statsCmd.Flags().StringArrayVarP(&statsGroups, "character-group", "g", nil, "character group spec; repeatable")
	statsCmd.Flags().StringVar(&statsMatch, "match", string(driving.MatchSubstring), "alias matching: substring or regex")
	statsCmd.Flags().BoolVar(&statsIgnoreCase, "ignore-case", false, "fold case when matching aliases")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	splitter, err := services.NewSplitter(statsDelimiter)
	if err != nil {
		return err
	}

	groups := make([]domain.CharacterGroup, 0, len(statsGroups))
	for id, spec := range statsGroups {
		group, err := domain.NewGroupFromSpec(id, spec)
		if err != nil {
			return err
		}
		groups = append(groups, group)
	}

	detector, err := services.NewDetector(groups,
		services.WithMatchMode(driving.MatchMode(statsMatch)),
		services.WithIgnoreCase(statsIgnoreCase),
	)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	normaliser, err := normaliserRegistry.ForPath(path)
	if err != nil {
		return err
	}
	manuscript, err := normaliser.Normalise(cmd.Context(), &domain.RawBook{Path: path, Content: content})
	if err != nil {
		return fmt.Errorf("normalising %s: %w", path, err)
	}

	sections := detector.Annotate(splitter.Split(manuscript.Text))

	names := make(map[int]string, len(groups))
	for _, group := range groups {
		names[group.ID] = group.DisplayName()
	}

	totalWords := 0
	cmd.Println(statsTitleStyle.Render(manuscript.Title))
	for _, section := range sections {
		words := section.WordCount()
		totalWords += words

		cmd.Printf("%s %s\n",
			statsSectionStyle.Render(section.Label()),
			statsMutedStyle.Render(fmt.Sprintf("(%d words)", words)))

		if len(section.Present) == 0 {
			continue
		}
		hits := make([]string, 0, len(section.Present))
		for _, id := range section.Present {
			hits = append(hits, fmt.Sprintf("%s ×%d", names[id], section.Counts[id]))
		}
		cmd.Printf("    %s\n", strings.Join(hits, ", "))
	}
	cmd.Println(statsMutedStyle.Render(fmt.Sprintf("%d sections, %d words", len(sections), totalWords)))

	return nil
}
