package dataset

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxCountryLen is the longest country name accepted, in characters.
const MaxCountryLen = 50

// UnlabeledCluster is the pass-through label for rows without a cluster column.
const UnlabeledCluster = "Unlabeled"

// summaryMarkers flag aggregate or annotation rows embedded in the source CSV.
var summaryMarkers = []string{"ultra-urban", "average", "summary", "total", "analysis"}

// row is one parsed CSV line keyed by header name.
type row map[string]string

// lookup returns the first present, non-empty value among keys.
func (r row) lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ParseNumber coerces a CSV cell to a number. Empty cells, the literals
// "null", "NULL" and "NaN", unparseable text and non-finite results are nil.
func ParseNumber(s string) *float64 {
	v := strings.TrimSpace(s)
	switch v {
	case "", "null", "NULL", "NaN":
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ClusterLabel derives the pass-through label from a raw cluster cell.
func ClusterLabel(raw string) string {
	if raw == "" {
		return UnlabeledCluster
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return "Cluster " + raw
	}
	return raw
}

// normalize maps a parsed row onto a DataRecord. ok is false when the row
// carries no usable year.
func normalize(r row) (rec DataRecord, ok bool) {
	rec.Country, _ = r.lookup(countryAliases...)
	yv, _ := r.lookup(yearAliases...)
	year := ParseNumber(yv)
	for _, f := range Fields {
		v, _ := r.lookup(fieldSpecs[f].aliases...)
		rec.Set(f, ParseNumber(v))
	}
	cl, _ := r.lookup(clusterAliases...)
	rec.ClusterLabel = ClusterLabel(cl)
	if year == nil {
		return rec, false
	}
	rec.Year = int(math.Trunc(*year))
	return rec, true
}

// validCountry reports whether a country cell names a real observation rather
// than an empty, oversized or summary row.
func validCountry(country string) bool {
	if strings.TrimSpace(country) == "" {
		return false
	}
	if utf8.RuneCountInString(country) > MaxCountryLen {
		return false
	}
	lc := strings.ToLower(country)
	for _, m := range summaryMarkers {
		if strings.Contains(lc, m) {
			return false
		}
	}
	return true
}
