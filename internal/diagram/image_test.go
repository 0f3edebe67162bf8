package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCurvePNG(t *testing.T) {
	png, err := RenderCurvePNG(testAnalysis(t))
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestExportCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, ExportCurve(testAnalysis(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCurveDefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve")
	require.NoError(t, ExportCurve(testAnalysis(t), path))

	_, err := os.Stat(path + ".png")
	require.NoError(t, err)
}
