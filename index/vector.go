package index

import "math"

// entry pairs a vocabulary column with its weight.
type entry struct {
	term   int
	weight float64
}

// Vector is a sparse term-weight vector with entries sorted by term column.
type Vector []entry

// Dot computes the dot product of two sparse vectors.
func (v Vector) Dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v) && j < len(other) {
		switch {
		case v[i].term < other[j].term:
			i++
		case v[i].term > other[j].term:
			j++
		default:
			sum += v[i].weight * other[j].weight
			i++
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, e := range v {
		sum += e.weight * e.weight
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector to unit length in place.
// Zero and empty vectors are left unchanged; they cannot be normalized and
// their cosine similarity to anything is well-defined as zero.
func (v Vector) Normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v {
		v[i].weight /= norm
	}
}
