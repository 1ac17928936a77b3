package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Leg3ndary/githubExtract/internal/config"
	"github.com/Leg3ndary/githubExtract/internal/output"
	"github.com/Leg3ndary/githubExtract/internal/usecase"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Prints a summary of a saved resume snapshot",
	Long: `Reads a snapshot written by "extract" (the configured output file when no
path is given) and prints the language breakdown, the most used topics and
the star distribution. No network access is made.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		configPath, _ := cmd.InheritedFlags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		path = cfg.OutputFile
	}
	top, _ := cmd.Flags().GetInt("top")

	doc, err := output.Load(path)
	if err != nil {
		return err
	}
	summary, err := usecase.Summarize(doc, top)
	if err != nil {
		return fmt.Errorf("failed to summarize snapshot: %w", err)
	}

	renderSummary(cmd.OutOrStdout(), summary)
	return nil
}

func renderSummary(w io.Writer, s *usecase.Summary) {
	name := s.Username
	if s.DisplayName != "" {
		name = fmt.Sprintf("%s (%s)", s.DisplayName, s.Username)
	}
	fmt.Fprintf(w, "%s: %d repositories, %d stars, %d forks\n\n", name, s.TotalRepos, s.Stars.Total, s.ForksTotal)

	languages := tablewriter.NewWriter(w)
	languages.SetHeader([]string{"Language", "Repos", "Share"})
	for _, l := range s.Languages {
		languages.Append([]string{l.Language, strconv.Itoa(l.Repos), strconv.FormatFloat(l.Percent, 'f', 1, 64) + "%"})
	}
	languages.Render()
	fmt.Fprintln(w)

	topics := tablewriter.NewWriter(w)
	topics.SetHeader([]string{"Topic", "Repos"})
	for _, t := range s.Topics {
		topics.Append([]string{t.Topic, strconv.Itoa(t.Repos)})
	}
	topics.Render()
	fmt.Fprintln(w)

	stars := tablewriter.NewWriter(w)
	stars.SetHeader([]string{"Stars", "Value"})
	stars.Append([]string{"Total", strconv.Itoa(s.Stars.Total)})
	stars.Append([]string{"Max", strconv.Itoa(s.Stars.Max)})
	stars.Append([]string{"Mean", strconv.FormatFloat(s.Stars.Mean, 'f', 2, 64)})
	stars.Append([]string{"Median", strconv.FormatFloat(s.Stars.Median, 'f', 1, 64)})
	stars.Render()
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().Int("top", 10, "Number of topics to list (0 = all)")
}
