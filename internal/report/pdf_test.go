package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosieve/internal/diagram"
	"github.com/alexiusacademia/gosieve/internal/sieve"
)

func testAnalysis(t *testing.T) *sieve.Analysis {
	t.Helper()
	a, err := sieve.Analyze(sieve.StandardStack(), []float64{0, 50, 100, 150, 150, 100, 50, 0})
	require.NoError(t, err)
	return a
}

func TestBuild(t *testing.T) {
	a := testAnalysis(t)

	png, err := diagram.RenderCurvePNG(a)
	require.NoError(t, err)

	doc, err := Build(a, png, Options{Project: "Test Pit TP-1", Author: "Lab"})
	require.NoError(t, err)
	require.NotEmpty(t, doc)

	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestBuildWithoutChart(t *testing.T) {
	doc, err := Build(testAnalysis(t), nil, Options{Title: "Gradation Test"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc[:4]))
}

func TestAsciiOnly(t *testing.T) {
	assert.Equal(t, "Cu = inf", asciiOnly("Cu = ∞"))
	assert.Equal(t, "plain text", asciiOnly("plain text"))
}
