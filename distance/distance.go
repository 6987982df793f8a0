package distance

import (
	"fmt"
	"math"
	"slices"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2(a, b []float32) float32 {
	return Sqrt(SquaredL2(a, b))
}

// Sqrt returns the square root of x as a float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// ScaleInPlace multiplies all elements of v by scalar.
func ScaleInPlace(v []float32, scalar float32) {
	for i := range v {
		v[i] *= scalar
	}
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := Dot(v, v)
	if norm2 == 0 {
		return false
	}
	ScaleInPlace(v, 1/Sqrt(norm2))
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return L2, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
