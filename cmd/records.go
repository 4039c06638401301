package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	recLimit   int
	recYear    int
	recCountry string
	recJSON    bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Load the dataset and print the normalized records",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, records, err := loadRecords()
		if err != nil {
			return err
		}
		out := make([]dataset.DataRecord, 0, len(records))
		for _, r := range records {
			if recYear != 0 && r.Year != recYear {
				continue
			}
			if recCountry != "" && r.Country != recCountry {
				continue
			}
			out = append(out, r)
		}
		total := len(out)
		if recLimit > 0 && len(out) > recLimit {
			out = out[:recLimit]
		}

		w := cmd.OutOrStdout()
		if recJSON {
			b, err := utils.PrettyJSON(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(b))
			return nil
		}
		fmt.Fprintf(w, "Loaded %s records from %s\n", humanize.Comma(int64(len(records))), path)
		if len(out) == 0 {
			fmt.Fprintln(w, "(no matching records)")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COUNTRY\tYEAR\tURBAN %\tOVERALL\tGINI\tLABEL")
		for _, r := range out {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
				utils.Truncate(r.Country, 28), r.Year,
				utils.FormatOptional(r.UrbanPopPerc, "%.1f"),
				utils.FormatOptional(r.OverallScore, "%.3f"),
				utils.FormatOptional(r.GiniCoefficient, "%.3f"),
				r.ClusterLabel)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(out) < total {
			fmt.Fprintf(w, "... %s more (use --limit 0 for all)\n", humanize.Comma(int64(total-len(out))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().IntVar(&recLimit, "limit", 20, "maximum records to print (0 = all)")
	recordsCmd.Flags().IntVar(&recYear, "year", 0, "only records for this year")
	recordsCmd.Flags().StringVar(&recCountry, "country", "", "only records for this country")
	recordsCmd.Flags().BoolVar(&recJSON, "json", false, "print JSON instead of a table")
}
