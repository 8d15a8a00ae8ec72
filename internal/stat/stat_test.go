package stat

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMeanAndVariance(t *testing.T) {
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if m := Mean(vals); !almostEqual(m, 5, 1e-12) {
		t.Fatalf("Mean = %v, want 5", m)
	}
	// Sample variance with n-1 denominator.
	if v := Variance(vals); !almostEqual(v, 32.0/7.0, 1e-12) {
		t.Fatalf("Variance = %v, want %v", v, 32.0/7.0)
	}
	if Mean(nil) != 0 || Variance([]float64{1}) != 0 {
		t.Fatal("degenerate inputs should yield 0")
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"perfect negative", []float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}, -1},
		{"constant series", []float64{1, 2, 3}, []float64{5, 5, 5}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0},
	}
	for _, tc := range tests {
		if got := Pearson(tc.x, tc.y); !almostEqual(got, tc.want, 1e-12) {
			t.Errorf("%s: Pearson = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	tests := []struct {
		q, want float64
	}{
		{0, 1}, {1, 4}, {0.5, 2.5}, {0.25, 1.75}, {0.75, 3.25},
	}
	for _, tc := range tests {
		if got := Quantile(sorted, tc.q); !almostEqual(got, tc.want, 1e-12) {
			t.Errorf("Quantile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
	if Quantile(nil, 0.5) != 0 {
		t.Fatal("empty slice should yield 0")
	}
}

func TestMedian(t *testing.T) {
	if m := Median([]float64{3, 1, 2}); m != 2 {
		t.Fatalf("Median odd = %v, want 2", m)
	}
	if m := Median([]float64{4, 1, 3, 2}); !almostEqual(m, 2.5, 1e-12) {
		t.Fatalf("Median even = %v, want 2.5", m)
	}
}

func TestSkewness(t *testing.T) {
	// Symmetric data has zero skew.
	if s := Skewness([]float64{1, 2, 3, 4, 5}); !almostEqual(s, 0, 1e-12) {
		t.Fatalf("symmetric skew = %v, want 0", s)
	}
	// A long right tail skews positive.
	if s := Skewness([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 100}); s <= 1 {
		t.Fatalf("right-tailed skew = %v, want > 1", s)
	}
	if Skewness([]float64{1, 2}) != 0 {
		t.Fatal("n < 3 should yield 0")
	}
	if Skewness([]float64{5, 5, 5, 5}) != 0 {
		t.Fatal("zero spread should yield 0")
	}
}

func TestLinearSlope(t *testing.T) {
	if s := LinearSlope([]float64{3, 5, 7, 9}); !almostEqual(s, 2, 1e-12) {
		t.Fatalf("slope = %v, want 2", s)
	}
	if s := LinearSlope([]float64{9, 7, 5, 3}); !almostEqual(s, -2, 1e-12) {
		t.Fatalf("slope = %v, want -2", s)
	}
	if LinearSlope([]float64{1}) != 0 {
		t.Fatal("n < 2 should yield 0")
	}
}

func TestHistogram(t *testing.T) {
	counts := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	for i, c := range counts {
		if c != 2 {
			t.Fatalf("bin %d = %d, want 2 (counts %v)", i, c, counts)
		}
	}
	// Constant values collapse into bin 0.
	counts = Histogram([]float64{7, 7, 7}, 4)
	if counts[0] != 3 {
		t.Fatalf("constant values: counts = %v", counts)
	}
}
