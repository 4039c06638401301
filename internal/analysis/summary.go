package analysis

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
)

// Urbanization band edges (percent urban population, right-inclusive).
const (
	lowBandMax    = 50.0
	mediumBandMax = 75.0
)

// Band names in display order.
const (
	BandLow    = "Low (<50%)"
	BandMedium = "Medium (50-75%)"
	BandHigh   = "High (>75%)"
)

// Summary is the dashboard-level view of one load: headline figures,
// per-cluster indicator means and latest-year urbanization breakdowns.
type Summary struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Records    int    `json:"records" yaml:"records"`
	Countries  int    `json:"countries" yaml:"countries"`
	LatestYear int    `json:"latestYear" yaml:"latestYear"`
	// AvgUrbanization is the mean urbanPopPerc over records that report it.
	AvgUrbanization float64 `json:"avgUrbanization" yaml:"avgUrbanization"`
	// SourceStable and SourceVolatile count records whose CSV cluster label
	// mentions Stable or Volatile.
	SourceStable   int `json:"sourceStable" yaml:"sourceStable"`
	SourceVolatile int `json:"sourceVolatile" yaml:"sourceVolatile"`

	Clustered int              `json:"clustered" yaml:"clustered"`
	Clusters  []ClusterSummary `json:"clusters" yaml:"clusters"`
	Bands     []BandSummary    `json:"bands" yaml:"bands"`
	Corr      Correlations     `json:"correlations" yaml:"correlations"`
	Warnings  []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ClusterSummary describes one labeled cluster.
type ClusterSummary struct {
	Label     string          `json:"label" yaml:"label"`
	Countries []string        `json:"countries" yaml:"countries"`
	Metrics   []IndicatorMean `json:"metrics" yaml:"metrics"`
}

// IndicatorMean is a cluster's mean for one indicator. Normalized rescales
// the mean to [0,1] against the other cluster (0 when they are equal).
type IndicatorMean struct {
	Field      string  `json:"field" yaml:"field"`
	Label      string  `json:"label" yaml:"label"`
	Mean       float64 `json:"mean" yaml:"mean"`
	Normalized float64 `json:"normalized" yaml:"normalized"`
}

// BandSummary aggregates latest-year records in one urbanization band.
type BandSummary struct {
	Band        string  `json:"band" yaml:"band"`
	Records     int     `json:"records" yaml:"records"`
	MeanOverall float64 `json:"meanOverall" yaml:"meanOverall"`
	// Scored counts the records that contributed to MeanOverall.
	Scored int `json:"scored" yaml:"scored"`
}

// Correlations holds Pearson r between urbanization and overall score for the
// latest year, overall and within each computed cluster.
type Correlations struct {
	Year     int     `json:"year" yaml:"year"`
	Global   float64 `json:"global" yaml:"global"`
	Stable   float64 `json:"stable" yaml:"stable"`
	Volatile float64 `json:"volatile" yaml:"volatile"`
}

// Summarize computes the dashboard summary for records and their profiles.
func Summarize(records []dataset.DataRecord, profiles map[string]profile.CountryProfile) *Summary {
	s := &Summary{Records: len(records)}
	countries := map[string]struct{}{}
	var urbanSum float64
	var urbanN int
	for i := range records {
		r := &records[i]
		countries[r.Country] = struct{}{}
		if r.Year > s.LatestYear {
			s.LatestYear = r.Year
		}
		if r.UrbanPopPerc != nil {
			urbanSum += *r.UrbanPopPerc
			urbanN++
		}
		if strings.Contains(r.ClusterLabel, "Stable") {
			s.SourceStable++
		}
		if strings.Contains(r.ClusterLabel, "Volatile") {
			s.SourceVolatile++
		}
	}
	s.Countries = len(countries)
	if urbanN > 0 {
		s.AvgUrbanization = urbanSum / float64(urbanN)
	}

	s.Clustered = len(profiles)
	s.Clusters = clusterSummaries(profiles)
	if len(profiles) == 0 {
		s.Warnings = append(s.Warnings, "no country has every indicator; clustering unavailable")
	}

	latest := latestYear(records, s.LatestYear)
	s.Bands = bands(latest)
	s.Corr = correlations(latest, profiles)
	s.Corr.Year = s.LatestYear
	return s
}

func latestYear(records []dataset.DataRecord, year int) []dataset.DataRecord {
	var out []dataset.DataRecord
	for _, r := range records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

func clusterSummaries(profiles map[string]profile.CountryProfile) []ClusterSummary {
	type acc struct {
		countries []string
		sum       [dataset.NumFields]float64
	}
	accs := map[string]*acc{profile.StableLabel: {}, profile.VolatileLabel: {}}
	for c, p := range profiles {
		a := accs[p.ClusterLabel]
		if a == nil {
			continue
		}
		a.countries = append(a.countries, c)
		for _, f := range dataset.Fields {
			a.sum[f] += p.Value(f)
		}
	}

	var out []ClusterSummary
	for _, label := range []string{profile.StableLabel, profile.VolatileLabel} {
		a := accs[label]
		if len(a.countries) == 0 {
			continue
		}
		sort.Strings(a.countries)
		cs := ClusterSummary{Label: label, Countries: a.countries}
		for _, f := range dataset.Fields {
			cs.Metrics = append(cs.Metrics, IndicatorMean{
				Field: f.Name(),
				Label: f.Label(),
				Mean:  a.sum[f] / float64(len(a.countries)),
			})
		}
		out = append(out, cs)
	}

	// Min-max normalize each indicator across clusters.
	for j := range dataset.Fields {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, cs := range out {
			lo = math.Min(lo, cs.Metrics[j].Mean)
			hi = math.Max(hi, cs.Metrics[j].Mean)
		}
		if hi == lo {
			continue
		}
		for i := range out {
			out[i].Metrics[j].Normalized = (out[i].Metrics[j].Mean - lo) / (hi - lo)
		}
	}
	return out
}

// BandOf returns the urbanization band for a percent-urban value.
func BandOf(urban float64) string {
	switch {
	case urban <= lowBandMax:
		return BandLow
	case urban <= mediumBandMax:
		return BandMedium
	}
	return BandHigh
}

func bands(records []dataset.DataRecord) []BandSummary {
	out := []BandSummary{{Band: BandLow}, {Band: BandMedium}, {Band: BandHigh}}
	idx := map[string]int{BandLow: 0, BandMedium: 1, BandHigh: 2}
	sums := make([]float64, len(out))
	for _, r := range records {
		if r.UrbanPopPerc == nil {
			continue
		}
		i := idx[BandOf(*r.UrbanPopPerc)]
		out[i].Records++
		if r.OverallScore != nil {
			sums[i] += *r.OverallScore
			out[i].Scored++
		}
	}
	for i := range out {
		if out[i].Scored > 0 {
			out[i].MeanOverall = sums[i] / float64(out[i].Scored)
		}
	}
	return out
}

func correlations(records []dataset.DataRecord, profiles map[string]profile.CountryProfile) Correlations {
	var all, stable, volatile [2][]float64
	for _, r := range records {
		if r.UrbanPopPerc == nil || r.OverallScore == nil {
			continue
		}
		x, y := *r.UrbanPopPerc, *r.OverallScore
		all[0], all[1] = append(all[0], x), append(all[1], y)
		p, ok := profiles[r.Country]
		if !ok {
			continue
		}
		if p.Stable() {
			stable[0], stable[1] = append(stable[0], x), append(stable[1], y)
		} else {
			volatile[0], volatile[1] = append(volatile[0], x), append(volatile[1], y)
		}
	}
	return Correlations{
		Global:   pearson(all[0], all[1]),
		Stable:   pearson(stable[0], stable[1]),
		Volatile: pearson(volatile[0], volatile[1]),
	}
}

// pearson returns r, or 0 when fewer than two points or r is undefined.
func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
