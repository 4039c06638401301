// Package profile builds one averaged indicator profile per country and
// splits the countries into Stable and Volatile urbanizers with a
// deterministic two-cluster k-means.
package profile

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/logging"
)

// CountryProfile is a country's indicators averaged over all years, with its
// computed cluster label.
type CountryProfile struct {
	Country string `json:"country"`
	// Years is the number of records aggregated for the country.
	Years int `json:"years"`
	// Features holds the averaged indicators in dataset.Fields order.
	Features [dataset.NumFields]float64 `json:"-"`
	// Cluster is the raw k-means index. It carries no meaning on its own;
	// use ClusterLabel.
	Cluster      int    `json:"cluster"`
	ClusterLabel string `json:"clusterLabel"`
}

// Value returns the averaged indicator f.
func (p CountryProfile) Value(f dataset.Field) float64 { return p.Features[f] }

// MarshalJSON flattens the averaged indicators into camelCase keys next to
// the identifying fields.
func (p CountryProfile) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, dataset.NumFields+4)
	m["country"] = p.Country
	m["years"] = p.Years
	m["cluster"] = p.Cluster
	m["clusterLabel"] = p.ClusterLabel
	for _, f := range dataset.Fields {
		m[f.Name()] = p.Features[f]
	}
	return json.Marshal(m)
}

// Stable reports whether the profile was labeled Stable Urbanizers.
func (p CountryProfile) Stable() bool { return p.ClusterLabel == StableLabel }

// Option configures ClusterCountries.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes clustering diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// ClusterCountries aggregates records per country, drops countries missing
// any indicator, standardizes the rest and labels them with a two-cluster
// k-means. It returns an empty map when no country has a complete profile.
// Identical inputs always produce identical assignments.
func ClusterCountries(records []dataset.DataRecord, opts ...Option) map[string]CountryProfile {
	o := options{logger: logging.Discard()}
	for _, fn := range opts {
		fn(&o)
	}
	start := time.Now()

	aggs := AggregateRecords(records)
	profiles := make([]CountryProfile, 0, len(aggs))
	for _, a := range aggs {
		if !a.Complete {
			o.logger.Debug("country dropped: incomplete profile", slog.String("country", a.Country))
			continue
		}
		profiles = append(profiles, CountryProfile{Country: a.Country, Years: a.Years, Features: a.Means})
	}
	out := make(map[string]CountryProfile, len(profiles))
	if len(profiles) == 0 {
		logging.LogOperation(o.logger, "clustering_skipped",
			slog.Int("countries", len(aggs)))
		return out
	}

	points := make([][]float64, len(profiles))
	overall := make([]float64, len(profiles))
	for i := range profiles {
		points[i] = profiles[i].Features[:]
		overall[i] = profiles[i].Value(dataset.OverallScore)
	}
	assign := KMeans(Standardize(points), Rounds)
	labels := ResolveLabels(assign, overall)

	var stable int
	for i := range profiles {
		profiles[i].Cluster = assign[i]
		profiles[i].ClusterLabel = labels[assign[i]]
		if profiles[i].Stable() {
			stable++
		}
		out[profiles[i].Country] = profiles[i]
	}
	logging.LogOperation(o.logger, "countries_clustered",
		slog.Int("countries", len(aggs)),
		slog.Int("clustered", len(profiles)),
		slog.Int("stable", stable),
		slog.Int("volatile", len(profiles)-stable),
		slog.Duration("duration", time.Since(start)))
	return out
}

// Labels returns the country→label view of profiles.
func Labels(profiles map[string]CountryProfile) map[string]string {
	out := make(map[string]string, len(profiles))
	for c, p := range profiles {
		out[c] = p.ClusterLabel
	}
	return out
}
