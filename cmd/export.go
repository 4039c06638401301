package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
	"github.com/KaramelBytes/urbanpulse-cli/internal/store"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	expFormat     string
	expOutputPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records, profiles and summary to SQLite or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(expFormat))
		if format != "sqlite" && format != "json" {
			return fmt.Errorf("unsupported --format: %s (use sqlite|json)", expFormat)
		}
		path, records, err := loadRecords()
		if err != nil {
			return err
		}
		profiles := profile.ClusterCountries(records, profile.WithLogger(logger))
		snap := store.NewSnapshot(filepath.Base(path), records, profiles)

		out := expOutputPath
		if out == "" {
			name := "urbanpulse.db"
			if format == "json" {
				name = "urbanpulse-" + snap.RunID + ".json"
			}
			out = filepath.Join(cfg.ExportDir, name)
		}

		switch format {
		case "json":
			if err := store.WriteJSON(out, snap); err != nil {
				return err
			}
		case "sqlite":
			db, err := store.Open(out, logger)
			if err != nil {
				return err
			}
			if err := db.Save(cmd.Context(), snap); err != nil {
				_ = db.Close()
				return err
			}
			if err := db.Close(); err != nil {
				return fmt.Errorf("close db: %w", err)
			}
		}

		size := ""
		if fi, err := os.Stat(out); err == nil {
			size = " (" + humanize.Bytes(uint64(fi.Size())) + ")"
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "✓ Exported run %s to %s%s\n", snap.RunID, out, size)
		fmt.Fprintf(w, "  records: %s, profiles: %d\n", humanize.Comma(int64(len(snap.Records))), len(snap.Profiles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&expFormat, "format", "sqlite", "export format: sqlite|json")
	exportCmd.Flags().StringVarP(&expOutputPath, "output", "o", "", "output path (default under export_dir)")
}
