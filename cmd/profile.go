package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
	"github.com/KaramelBytes/urbanpulse-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	profCountry string
	profLabel   string
	profJSON    bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Average each country's indicators and cluster countries into Stable/Volatile urbanizers",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch profLabel {
		case "", "stable", "volatile":
		default:
			return fmt.Errorf("invalid --label: %s (use stable or volatile)", profLabel)
		}
		_, records, err := loadRecords()
		if err != nil {
			return err
		}
		profiles := profile.ClusterCountries(records, profile.WithLogger(logger))

		list := []profile.CountryProfile{}
		switch {
		case profCountry != "":
			p, ok := profiles[profCountry]
			if !ok {
				return fmt.Errorf("no complete profile for country %q", profCountry)
			}
			list = append(list, p)
		default:
			for _, p := range profiles {
				if profLabel == "stable" && !p.Stable() || profLabel == "volatile" && p.Stable() {
					continue
				}
				list = append(list, p)
			}
			sort.Slice(list, func(i, j int) bool { return list[i].Country < list[j].Country })
		}

		w := cmd.OutOrStdout()
		if profJSON {
			var v any = list
			if profCountry != "" {
				v = list[0]
			}
			b, err := utils.PrettyJSON(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(b))
			return nil
		}
		if len(list) == 0 {
			fmt.Fprintln(w, "(no country has a complete profile)")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "COUNTRY\tYEARS\tLABEL\tURBAN %\tOVERALL\tGINI\tHOMICIDE")
		for _, p := range list {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f\t%.3f\t%.3f\t%.3f\n",
				utils.Truncate(p.Country, 28), p.Years, p.ClusterLabel,
				p.Value(dataset.UrbanPopPerc), p.Value(dataset.OverallScore),
				p.Value(dataset.GiniCoefficient), p.Value(dataset.HomicideRate))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d countries clustered\n", len(profiles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profCountry, "country", "", "print a single country's profile")
	profileCmd.Flags().StringVar(&profLabel, "label", "", "filter by label: stable|volatile")
	profileCmd.Flags().BoolVar(&profJSON, "json", false, "print JSON instead of a table")
}
