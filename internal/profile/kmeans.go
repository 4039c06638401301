package profile

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// K is the number of clusters.
	K = 2
	// Rounds is the fixed number of assign/update iterations. There is no
	// convergence check.
	Rounds = 10
)

// KMeans partitions points into K clusters and returns each point's cluster
// index. Seeding is deterministic: with N <= K points each point seeds its
// own cluster (a single point seeds both), otherwise the seeds are the points
// at index 0 and floor(N/K). Ties go to the lower cluster index and a cluster
// that loses all members keeps its previous centroid.
func KMeans(points [][]float64, rounds int) []int {
	n := len(points)
	assign := make([]int, n)
	if n == 0 {
		return assign
	}
	dim := len(points[0])

	centroids := seed(points)
	for iter := 0; iter < rounds; iter++ {
		for i, p := range points {
			best, bestDist := 0, math.Inf(1)
			for c, cen := range centroids {
				if d := floats.Distance(p, cen, 2); d < bestDist {
					best, bestDist = c, d
				}
			}
			assign[i] = best
		}

		sums := make([][]float64, K)
		counts := make([]int, K)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(sums[assign[i]], p)
			counts[assign[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for j := range sums[c] {
				sums[c][j] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}
	return assign
}

func seed(points [][]float64) [][]float64 {
	n := len(points)
	centroids := make([][]float64, K)
	if n <= K {
		for c := range centroids {
			centroids[c] = clone(points[min(c, n-1)])
		}
		return centroids
	}
	step := n / K
	for c := range centroids {
		centroids[c] = clone(points[min(c*step, n-1)])
	}
	return centroids
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
