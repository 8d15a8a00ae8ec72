// Package stat holds the small set of descriptive statistics the profiling
// and insight engines share. All functions operate on plain float64 slices
// that callers have already filtered to non-missing values.
package stat

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Variance returns the sample variance (n-1 denominator), or 0 when fewer
// than two values are present.
func Variance(vals []float64) float64 {
	n := len(vals)
	if n < 2 {
		return 0
	}
	m := Mean(vals)
	ss := 0.0
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return ss / float64(n-1)
}

// Std returns the sample standard deviation.
func Std(vals []float64) float64 {
	return math.Sqrt(Variance(vals))
}

// Pearson computes the Pearson correlation coefficient of two equal-length
// series. It returns 0 when the inputs are degenerate (mismatched lengths,
// empty, or zero variance in either series).
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}
	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Quantile interpolates the q-th quantile (0..1) of an ascending-sorted
// slice using linear interpolation between closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Median returns the 50th percentile of an unsorted slice.
func Median(vals []float64) float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return Quantile(cp, 0.5)
}

// Skewness returns the adjusted Fisher-Pearson sample skewness. It needs at
// least three values and non-zero spread; otherwise it returns 0.
func Skewness(vals []float64) float64 {
	n := float64(len(vals))
	if n < 3 {
		return 0
	}
	m := Mean(vals)
	var m2, m3 float64
	for _, v := range vals {
		d := v - m
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// LinearSlope fits an ordinary least-squares line of y against its positional
// index 0..n-1 and returns the slope.
func LinearSlope(y []float64) float64 {
	n := float64(len(y))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Histogram buckets values into the given number of equal-width bins and
// returns the per-bin counts. A zero-width range collapses into bin 0.
func Histogram(vals []float64, bins int) []int {
	counts := make([]int, bins)
	if len(vals) == 0 || bins <= 0 {
		return counts
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	for _, v := range vals {
		idx := 0
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}
	return counts
}
