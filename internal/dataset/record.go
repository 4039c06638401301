package dataset

// Field identifies one numeric indicator of a DataRecord.
type Field int

// Indicator fields in feature-vector order. The order is shared by aggregation,
// standardization, export and the API; do not reorder.
const (
	UrbanPopPerc Field = iota
	GiniCoefficient
	OverallScore
	HomicideRate
	Militarisation
	PoliticalInstability
	InternalPeace
	WeaponsExports
	WeaponsImports
	NuclearHeavyWeapons
	OngoingConflict
	NeighbouringCountriesRelations
	IntensityOfInternalConflict
	AgValueAdded
	RenEnergyConsPerc
	CleanCookingAccess
	PerceptionsOfCriminality
	ViolentCrime
	ViolentDemonstrations
	AccessToSmallArms
	SafetyAndSecurity
	TotalPop
	CarbonDamage
	GDP
	PopDensSqKm

	// NumFields is the number of indicator fields.
	NumFields = int(PopDensSqKm) + 1
)

// Fields lists every indicator in feature-vector order.
var Fields = func() []Field {
	fs := make([]Field, NumFields)
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}()

// Name returns the camelCase key used in JSON output and exports.
func (f Field) Name() string {
	if f < 0 || int(f) >= NumFields {
		return "unknown"
	}
	return fieldSpecs[f].name
}

// Label returns a human-readable indicator name.
func (f Field) Label() string {
	if f < 0 || int(f) >= NumFields {
		return "Unknown"
	}
	return fieldSpecs[f].label
}

func (f Field) String() string { return f.Name() }

// FieldByName resolves a camelCase field name.
func FieldByName(name string) (Field, bool) {
	for _, f := range Fields {
		if fieldSpecs[f].name == name {
			return f, true
		}
	}
	return 0, false
}

// DataRecord is one country-year observation. A nil indicator means the value
// was absent for that year; it is never coerced to zero.
type DataRecord struct {
	Country string `json:"country"`
	Year    int    `json:"year"`

	UrbanPopPerc                   *float64 `json:"urbanPopPerc"`
	GiniCoefficient                *float64 `json:"giniCoefficient"`
	OverallScore                   *float64 `json:"overallScore"`
	HomicideRate                   *float64 `json:"homicideRate"`
	Militarisation                 *float64 `json:"militarisation"`
	PoliticalInstability           *float64 `json:"politicalInstability"`
	InternalPeace                  *float64 `json:"internalPeace"`
	WeaponsExports                 *float64 `json:"weaponsExports"`
	WeaponsImports                 *float64 `json:"weaponsImports"`
	NuclearHeavyWeapons            *float64 `json:"nuclearHeavyWeapons"`
	OngoingConflict                *float64 `json:"ongoingConflict"`
	NeighbouringCountriesRelations *float64 `json:"neighbouringCountriesRelations"`
	IntensityOfInternalConflict    *float64 `json:"intensityOfInternalConflict"`
	AgValueAdded                   *float64 `json:"agValueAdded"`
	RenEnergyConsPerc              *float64 `json:"renEnergyConsPerc"`
	CleanCookingAccess             *float64 `json:"cleanCookingAccess"`
	PerceptionsOfCriminality       *float64 `json:"perceptionsOfCriminality"`
	ViolentCrime                   *float64 `json:"violentCrime"`
	ViolentDemonstrations          *float64 `json:"violentDemonstrations"`
	AccessToSmallArms              *float64 `json:"accessToSmallArms"`
	SafetyAndSecurity              *float64 `json:"safetyAndSecurity"`
	TotalPop                       *float64 `json:"totalPop"`
	CarbonDamage                   *float64 `json:"carbonDamage"`
	GDP                            *float64 `json:"gdp"`
	PopDensSqKm                    *float64 `json:"popDensSqKm"`

	// ClusterLabel is the label carried by the source CSV, if any. It is not
	// the label computed by the profiler.
	ClusterLabel string `json:"clusterLabel"`
}

// Value returns the indicator for f, or nil when absent.
func (r *DataRecord) Value(f Field) *float64 {
	if p := r.slot(f); p != nil {
		return *p
	}
	return nil
}

// Set stores v for f. A nil v clears the indicator.
func (r *DataRecord) Set(f Field, v *float64) {
	if p := r.slot(f); p != nil {
		*p = v
	}
}

func (r *DataRecord) slot(f Field) **float64 {
	switch f {
	case UrbanPopPerc:
		return &r.UrbanPopPerc
	case GiniCoefficient:
		return &r.GiniCoefficient
	case OverallScore:
		return &r.OverallScore
	case HomicideRate:
		return &r.HomicideRate
	case Militarisation:
		return &r.Militarisation
	case PoliticalInstability:
		return &r.PoliticalInstability
	case InternalPeace:
		return &r.InternalPeace
	case WeaponsExports:
		return &r.WeaponsExports
	case WeaponsImports:
		return &r.WeaponsImports
	case NuclearHeavyWeapons:
		return &r.NuclearHeavyWeapons
	case OngoingConflict:
		return &r.OngoingConflict
	case NeighbouringCountriesRelations:
		return &r.NeighbouringCountriesRelations
	case IntensityOfInternalConflict:
		return &r.IntensityOfInternalConflict
	case AgValueAdded:
		return &r.AgValueAdded
	case RenEnergyConsPerc:
		return &r.RenEnergyConsPerc
	case CleanCookingAccess:
		return &r.CleanCookingAccess
	case PerceptionsOfCriminality:
		return &r.PerceptionsOfCriminality
	case ViolentCrime:
		return &r.ViolentCrime
	case ViolentDemonstrations:
		return &r.ViolentDemonstrations
	case AccessToSmallArms:
		return &r.AccessToSmallArms
	case SafetyAndSecurity:
		return &r.SafetyAndSecurity
	case TotalPop:
		return &r.TotalPop
	case CarbonDamage:
		return &r.CarbonDamage
	case GDP:
		return &r.GDP
	case PopDensSqKm:
		return &r.PopDensSqKm
	}
	return nil
}
