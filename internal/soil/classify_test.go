package soil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyD10(t *testing.T) {
	cases := []struct {
		d10  float64
		want string
	}{
		{0.01, FineSoil},
		{0.074, FineSoil},
		{0.075, Sand}, // lower bound is inclusive for sand
		{0.5, Sand},
		{1.999, Sand},
		{2.0, Gravel}, // lower bound is inclusive for gravel
		{10, Gravel},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyD10(tc.d10), "D10 = %v", tc.d10)
	}
}

func TestClassifyGradation(t *testing.T) {
	cases := []struct {
		name   string
		cu, cc float64
		want   string
	}{
		{"well graded", 6, 1.5, WellGraded},
		{"cu too low", 3, 1.5, PoorlyGraded},
		{"cu at threshold", 4, 1.5, PoorlyGraded},
		{"cc too low", 6, 0.9, PoorlyGraded},
		{"cc at lower bound", 6, 1.0, PoorlyGraded},
		{"cc at upper bound", 6, 3.0, PoorlyGraded},
		{"cc too high", 6, 3.5, PoorlyGraded},
		{"infinite coefficients", math.Inf(1), math.Inf(1), PoorlyGraded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyGradation(tc.cu, tc.cc))
		})
	}
}
