package profile

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scaler holds per-dimension population statistics.
type Scaler struct {
	Means []float64
	Stds  []float64
}

// FitScaler computes the population mean and standard deviation (divide by
// N) of every dimension of points. All points must share one dimension.
func FitScaler(points [][]float64) Scaler {
	if len(points) == 0 {
		return Scaler{}
	}
	dim := len(points[0])
	sc := Scaler{Means: make([]float64, dim), Stds: make([]float64, dim)}
	col := make([]float64, len(points))
	for j := 0; j < dim; j++ {
		for i, p := range points {
			col[i] = p[j]
		}
		sc.Means[j], sc.Stds[j] = stat.PopMeanStdDev(col, nil)
	}
	return sc
}

// Transform returns z-scores for points. A dimension with zero (or
// numerically unusable) spread maps to 0 for every point.
func (sc Scaler) Transform(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		z := make([]float64, len(p))
		for j, v := range p {
			std := sc.Stds[j]
			if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
				continue
			}
			z[j] = (v - sc.Means[j]) / std
		}
		out[i] = z
	}
	return out
}

// Standardize fits a scaler on points and returns their z-scores.
func Standardize(points [][]float64) [][]float64 {
	return FitScaler(points).Transform(points)
}
