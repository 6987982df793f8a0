// Package distance provides float32 vector distance calculations.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (default)
//   - MetricSquaredL2: Squared Euclidean distance (no sqrt)
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist := distance.L2(a, b)
//	sim := distance.Dot(a, b)
//	normalized, ok := distance.NormalizeL2Copy(vec)
package distance
