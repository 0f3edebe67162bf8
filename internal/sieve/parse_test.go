package sieve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeights(t *testing.T) {
	weights, err := ParseWeights("0, 50,100 ,150,150,100,50,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 50, 100, 150, 150, 100, 50, 0}, weights)
}

func TestParseWeightsDecimals(t *testing.T) {
	weights, err := ParseWeights("12.5,0.25")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 0.25}, weights)
}

func TestParseWeightsBadToken(t *testing.T) {
	cases := []struct {
		name  string
		input string
		token string
		index int
	}{
		{"non-numeric", "0,50,abc,150", "abc", 2},
		{"negative", "0,-5,100", "-5", 1},
		{"empty token", "0,50,,150", "", 2},
		{"trailing comma", "0,50,150,", "", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseWeights(tc.input)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.token, parseErr.Token)
			assert.Equal(t, tc.index, parseErr.Index)
		})
	}
}

func TestParseSizes(t *testing.T) {
	spec, err := ParseSizes("9.5,4.75,2.36")
	require.NoError(t, err)
	assert.Equal(t, []float64{9.5, 4.75, 2.36, 0}, spec.Sizes, "pan appended when omitted")
}

func TestParseSizesExplicitPan(t *testing.T) {
	spec, err := ParseSizes("4.75,2.36,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{4.75, 2.36, 0}, spec.Sizes)
}

func TestParseSizesNotDecreasing(t *testing.T) {
	_, err := ParseSizes("2.36,4.75")
	require.Error(t, err)

	var stackErr *StackError
	assert.True(t, errors.As(err, &stackErr))
}

func TestStandardStack(t *testing.T) {
	stack := StandardStack()
	assert.Equal(t, []float64{4.75, 2.36, 1.18, 0.600, 0.300, 0.150, 0.075, 0}, stack.Sizes)
	assert.Equal(t, 8, stack.Count())
	require.NoError(t, stack.Validate())
	assert.Equal(t, "4.750", stack.Label(0))
	assert.Equal(t, "Pan", stack.Label(7))
}
