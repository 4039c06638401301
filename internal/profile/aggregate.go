package profile

import (
	"math"
	"sort"

	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
)

// aggregator accumulates one country's observations across years.
type aggregator struct {
	country string
	years   int
	sum     [dataset.NumFields]float64
	n       [dataset.NumFields]int
}

func (a *aggregator) add(r *dataset.DataRecord) {
	a.years++
	for _, f := range dataset.Fields {
		if v := r.Value(f); v != nil {
			a.sum[f] += *v
			a.n[f]++
		}
	}
}

// average finalizes the per-field means. A field with no observations
// averages to 0 and is reported in missing so the completeness filter can
// drop the country.
func (a *aggregator) average() (means [dataset.NumFields]float64, missing bool) {
	for _, f := range dataset.Fields {
		if a.n[f] == 0 {
			missing = true
			continue
		}
		means[f] = a.sum[f] / float64(a.n[f])
	}
	return means, missing
}

// Aggregate is one country's averaged indicators.
type Aggregate struct {
	Country string
	Years   int
	Means   [dataset.NumFields]float64
	// Complete is false when any indicator was never observed or averaged to
	// a non-finite value.
	Complete bool
}

// AggregateRecords groups records by exact country name and averages every
// indicator over the years where it was present. The result is sorted by
// country name so clustering does not depend on record order.
func AggregateRecords(records []dataset.DataRecord) []Aggregate {
	byCountry := make(map[string]*aggregator)
	order := make([]*aggregator, 0)
	for i := range records {
		r := &records[i]
		if r.Country == "" {
			continue
		}
		a, ok := byCountry[r.Country]
		if !ok {
			a = &aggregator{country: r.Country}
			byCountry[r.Country] = a
			order = append(order, a)
		}
		a.add(r)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].country < order[j].country })

	out := make([]Aggregate, 0, len(order))
	for _, a := range order {
		means, missing := a.average()
		out = append(out, Aggregate{
			Country:  a.country,
			Years:    a.years,
			Means:    means,
			Complete: !missing && finite(means[:]),
		})
	}
	return out
}

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
