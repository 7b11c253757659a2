package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Dot(t *testing.T) {
	tests := []struct {
		name string
		a    Vector
		b    Vector
		want float64
	}{
		{
			name: "overlapping terms",
			a:    Vector{{term: 0, weight: 1.0}, {term: 2, weight: 2.0}},
			b:    Vector{{term: 0, weight: 3.0}, {term: 1, weight: 4.0}, {term: 2, weight: 0.5}},
			want: 4.0,
		},
		{
			name: "disjoint terms",
			a:    Vector{{term: 0, weight: 1.0}},
			b:    Vector{{term: 1, weight: 1.0}},
			want: 0.0,
		},
		{
			name: "empty vector",
			a:    nil,
			b:    Vector{{term: 0, weight: 1.0}},
			want: 0.0,
		},
		{
			name: "identical unit vectors",
			a:    Vector{{term: 1, weight: 0.6}, {term: 3, weight: 0.8}},
			b:    Vector{{term: 1, weight: 0.6}, {term: 3, weight: 0.8}},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.Dot(tt.b), 1e-9)
			assert.InDelta(t, tt.want, tt.b.Dot(tt.a), 1e-9, "dot product should be symmetric")
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vector
		expected Vector
	}{
		{
			name:     "unit vector remains unchanged",
			input:    Vector{{term: 0, weight: 1.0}},
			expected: Vector{{term: 0, weight: 1.0}},
		},
		{
			name:     "scale non-unit vector",
			input:    Vector{{term: 0, weight: 3.0}, {term: 1, weight: 4.0}},
			expected: Vector{{term: 0, weight: 0.6}, {term: 1, weight: 0.8}},
		},
		{
			name:     "small values",
			input:    Vector{{term: 0, weight: 0.001}, {term: 1, weight: 0.002}},
			expected: Vector{{term: 0, weight: 0.001 / math.Sqrt(0.000005)}, {term: 1, weight: 0.002 / math.Sqrt(0.000005)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := make(Vector, len(tt.input))
			copy(v, tt.input)
			v.Normalize()

			require.Equal(t, len(tt.expected), len(v), "vector length mismatch")
			for i := range v {
				assert.InDelta(t, tt.expected[i].weight, v[i].weight, 1e-9, "entry %d", i)
			}

			assert.InDelta(t, 1.0, v.Norm(), 1e-9, "norm should be 1.0 after normalization")
		})
	}
}

func TestVector_Normalize_ZeroVector(t *testing.T) {
	v := Vector{{term: 0, weight: 0.0}, {term: 1, weight: 0.0}}
	v.Normalize()

	for i, e := range v {
		assert.Equal(t, 0.0, e.weight, "entry %d should stay 0", i)
	}
}

func TestVector_Normalize_Empty(t *testing.T) {
	var v Vector
	v.Normalize()
	assert.Empty(t, v)
}
