package profile

// Semantic cluster labels.
const (
	StableLabel   = "Stable Urbanizers"
	VolatileLabel = "Volatile Urbanizers"
)

// ResolveLabels maps raw k-means cluster indices to semantic labels. The
// cluster whose members have the lower mean overall score (more peaceful) is
// Stable. With a tie, or when one cluster is empty, raw cluster 0 is Stable.
func ResolveLabels(assign []int, overall []float64) [K]string {
	var sum [K]float64
	var n [K]int
	for i, c := range assign {
		sum[c] += overall[i]
		n[c]++
	}
	labels := [K]string{StableLabel, VolatileLabel}
	if n[0] == 0 || n[1] == 0 {
		return labels
	}
	if sum[0]/float64(n[0]) > sum[1]/float64(n[1]) {
		labels[0], labels[1] = VolatileLabel, StableLabel
	}
	return labels
}
