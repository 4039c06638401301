package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/urbanpulse-cli/internal/analysis"
	"github.com/KaramelBytes/urbanpulse-cli/internal/dataset"
	"github.com/KaramelBytes/urbanpulse-cli/internal/profile"
	"github.com/KaramelBytes/urbanpulse-cli/internal/utils"
)

// Snapshot is everything one export run writes: the loaded records, the
// clustered profiles and the derived summary.
type Snapshot struct {
	RunID     string                   `json:"runId"`
	Source    string                   `json:"source"`
	CreatedAt time.Time                `json:"createdAt"`
	Records   []dataset.DataRecord     `json:"records"`
	Profiles  []profile.CountryProfile `json:"profiles"`
	Summary   *analysis.Summary        `json:"summary"`
}

// NewSnapshot stamps a new run. Profiles are ordered by country.
func NewSnapshot(source string, records []dataset.DataRecord, profiles map[string]profile.CountryProfile) *Snapshot {
	ps := make([]profile.CountryProfile, 0, len(profiles))
	for _, p := range profiles {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Country < ps[j].Country })
	if records == nil {
		records = []dataset.DataRecord{}
	}
	sum := analysis.Summarize(records, profiles)
	sum.Name = source
	return &Snapshot{
		RunID:     uuid.NewString(),
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Records:   records,
		Profiles:  ps,
		Summary:   sum,
	}
}

// WriteJSON writes the snapshot as indented JSON, atomically.
func WriteJSON(path string, snap *Snapshot) error {
	b, err := utils.PrettyJSON(snap)
	if err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
