package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
)

// keyMetrics are the indicators shown in the cluster comparison.
var keyMetrics = []dataset.Field{
	dataset.UrbanPopPerc,
	dataset.OverallScore,
	dataset.GiniCoefficient,
	dataset.HomicideRate,
	dataset.PoliticalInstability,
	dataset.SafetyAndSecurity,
	dataset.RenEnergyConsPerc,
	dataset.GDP,
}

// Markdown renders the summary as a plain-text report.
func (s *Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if s.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", safeVal(s.Name)))
	}
	b.WriteString(fmt.Sprintf("Records: %d\n", s.Records))
	b.WriteString(fmt.Sprintf("Countries: %d\n", s.Countries))
	if s.LatestYear > 0 {
		b.WriteString(fmt.Sprintf("Latest year: %d\n", s.LatestYear))
	}
	b.WriteString(fmt.Sprintf("Avg urbanization: %.1f%%\n", s.AvgUrbanization))
	b.WriteString(fmt.Sprintf("Source labels: %d stable, %d volatile\n\n", s.SourceStable, s.SourceVolatile))

	b.WriteString("[CLUSTERS]\n")
	if len(s.Clusters) == 0 {
		b.WriteString("- none\n")
	}
	for _, c := range s.Clusters {
		b.WriteString(fmt.Sprintf("- %s (n=%d): %s\n", c.Label, len(c.Countries), strings.Join(c.Countries, ", ")))
	}

	if len(s.Clusters) > 0 {
		b.WriteString("\n[CLUSTER COMPARISON]\n")
		b.WriteString("| Indicator |")
		for _, c := range s.Clusters {
			b.WriteString(" " + c.Label + " |")
		}
		b.WriteString("\n|---|")
		b.WriteString(strings.Repeat("---|", len(s.Clusters)))
		b.WriteString("\n")
		for _, f := range keyMetrics {
			b.WriteString("| " + safeName(f.Label()) + " |")
			for _, c := range s.Clusters {
				m := c.Metrics[f]
				b.WriteString(fmt.Sprintf(" %.4g (%.2f) |", m.Mean, m.Normalized))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n[URBANIZATION BANDS %d]\n", s.LatestYear))
	for _, band := range s.Bands {
		b.WriteString(fmt.Sprintf("- %s: %d records", band.Band, band.Records))
		if band.Scored > 0 {
			b.WriteString(fmt.Sprintf(", mean overall score %.3f", band.MeanOverall))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n[CORRELATION urbanPopPerc ~ overallScore]\n")
	b.WriteString(fmt.Sprintf("- all: r=%.3f\n", s.Corr.Global))
	b.WriteString(fmt.Sprintf("- stable: r=%.3f\n", s.Corr.Stable))
	b.WriteString(fmt.Sprintf("- volatile: r=%.3f\n", s.Corr.Volatile))

	if len(s.Warnings) > 0 {
		b.WriteString("\n[WARNINGS]\n")
		for _, w := range s.Warnings {
			b.WriteString("- " + w + "\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return strings.ReplaceAll(s, "|", "/")
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
