package dataset

// fieldSpec describes how one indicator is named and where it may appear in
// the source CSV. Aliases are tried in order; the first present, non-empty
// cell wins.
type fieldSpec struct {
	name    string
	label   string
	aliases []string
}

var fieldSpecs = [NumFields]fieldSpec{
	UrbanPopPerc: {"urbanPopPerc", "Urban population (%)",
		[]string{"urban_pop_perc", "urban_pop_percentage", "urban_pop_%"}},
	GiniCoefficient: {"giniCoefficient", "Gini coefficient",
		[]string{"Gini coefficient (2021 prices)", "gini_coef", "gini_coefficient", "Gini coefficient"}},
	OverallScore: {"overallScore", "Overall score",
		[]string{"overall score", "overall_score", "Overall Score"}},
	HomicideRate: {"homicideRate", "Homicide rate",
		[]string{"homicide rate", "homicide_rate"}},
	Militarisation: {"militarisation", "Militarisation",
		[]string{"militarisation", "militarization"}},
	PoliticalInstability: {"politicalInstability", "Political instability",
		[]string{"Political instability", "political_instability", "Political Instability"}},
	InternalPeace: {"internalPeace", "Internal peace",
		[]string{"internal peace", "internal_peace", "Internal Peace"}},
	WeaponsExports: {"weaponsExports", "Weapons exports",
		[]string{"weapons exports", "weapons_exports"}},
	WeaponsImports: {"weaponsImports", "Weapons imports",
		[]string{"weapons imports", "weapons_imports"}},
	NuclearHeavyWeapons: {"nuclearHeavyWeapons", "Nuclear and heavy weapons",
		[]string{"nuclear and heavy weapons", "nuclear_heavy_weapons"}},
	OngoingConflict: {"ongoingConflict", "Ongoing conflict",
		[]string{"ongoing conflict", "ongoing_conflict"}},
	NeighbouringCountriesRelations: {"neighbouringCountriesRelations", "Neighbouring countries relations",
		[]string{"Neighbouring countries relations", "neighbouring_countries_relations"}},
	IntensityOfInternalConflict: {"intensityOfInternalConflict", "Intensity of internal conflict",
		[]string{"intensity of internal conflict", "intensity_of_internal_conflict"}},
	AgValueAdded: {"agValueAdded", "Agriculture value added (% of GDP)",
		[]string{
			"Agriculture, forestry, and fishing, value added (% of GDP)",
			"ag_value_added",
			"Agriculture forestry and fishing value added (% of GDP)",
		}},
	RenEnergyConsPerc: {"renEnergyConsPerc", "Renewable energy consumption (%)",
		[]string{"ren_energy_cons_perc", "ren_energy_percentage", "ren_energy_cons_%"}},
	CleanCookingAccess: {"cleanCookingAccess", "Clean cooking access (%)",
		[]string{
			"clean_fuel_tech_cook_pop",
			"clean_cooking_access",
			"Access to clean fuels and technologies for cooking (% of population)",
		}},
	PerceptionsOfCriminality: {"perceptionsOfCriminality", "Perceptions of criminality",
		[]string{"perceptions of criminality", "perceptions_of_criminality", "perceptions_crime"}},
	ViolentCrime: {"violentCrime", "Violent crime",
		[]string{"Violent crime", "violent_crime"}},
	ViolentDemonstrations: {"violentDemonstrations", "Violent demonstrations",
		[]string{"violent demonstrations", "violent_demonstrations"}},
	AccessToSmallArms: {"accessToSmallArms", "Access to small arms",
		[]string{"Access to small arms", "access_to_small_arms"}},
	SafetyAndSecurity: {"safetyAndSecurity", "Safety and security",
		[]string{"safety and security", "safety_and_security", "safety & security"}},
	TotalPop: {"totalPop", "Total population",
		[]string{"total_pop", "total_population", "total population"}},
	CarbonDamage: {"carbonDamage", "Carbon dioxide damage (% of GNI)",
		[]string{"Adjusted savings: carbon dioxide damage (% of GNI)", "carbon_damage", "carbon_dioxide_damage"}},
	GDP: {"gdp", "GDP",
		[]string{"gdp", "GDP", "gdp_usd"}},
	PopDensSqKm: {"popDensSqKm", "Population density (per km²)",
		[]string{"pop_dens_sq_km", "population_density"}},
}

var (
	countryAliases = []string{"Country", "country"}
	yearAliases    = []string{"Year", "year"}
	clusterAliases = []string{"Cluster_Label", "cluster_label", "Cluster", "cluster"}
)

// Aliases returns the header spellings accepted for f, in priority order.
func Aliases(f Field) []string {
	if f < 0 || int(f) >= NumFields {
		return nil
	}
	out := make([]string, len(fieldSpecs[f].aliases))
	copy(out, fieldSpecs[f].aliases)
	return out
}
