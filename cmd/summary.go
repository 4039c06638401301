package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/urbanpulse-cli/internal/analysis"
	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
	"github.com/KaramelBytes/urbanpulse-cli/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	sumFormat     string
	sumOutputPath string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the dataset: KPIs, cluster comparison, urbanization bands and correlations",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(sumFormat))
		switch format {
		case "markdown", "md", "json", "yaml", "yml":
		default:
			return fmt.Errorf("unsupported --format: %s (use markdown|json|yaml)", sumFormat)
		}
		path, records, err := loadRecords()
		if err != nil {
			return err
		}
		s := analysis.Summarize(records, profile.ClusterCountries(records, profile.WithLogger(logger)))
		s.Name = filepath.Base(path)

		b, err := renderSummary(s, format)
		if err != nil {
			return err
		}
		if sumOutputPath != "" {
			if err := utils.SafeWriteFile(sumOutputPath, b); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote summary to %s\n", sumOutputPath)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(b), "\n"))
		return nil
	},
}

func renderSummary(s *analysis.Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return utils.PrettyJSON(s)
	case "yaml", "yml":
		b, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	}
	return []byte(s.Markdown()), nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&sumFormat, "format", "markdown", "output format: markdown|json|yaml")
	summaryCmd.Flags().StringVarP(&sumOutputPath, "output", "o", "", "optional path to write the summary")
}
