package cmd

import (
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosect/internal/calc"
	"github.com/alexiusacademia/gosect/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoJobsCalculate(t *testing.T) {
	jf := demoJobs()
	results, err := calc.CalculateAll(jf.Sections)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, jf.Sections[i].Kind, r.Kind)
		assert.Greater(t, r.X.ShapeFactor, 1.0, r.Label)
		assert.Greater(t, r.Y.ShapeFactor, 1.0, r.Label)
	}
	assert.InDelta(t, 600, results[0].X.PNA, 1e-5)
}

func TestOutputPath(t *testing.T) {
	defer func(s config.Settings) { settings = s }(settings)

	settings = config.Settings{}
	assert.Equal(t, "out.csv", outputPath("out.csv"))

	settings.OutputDir = "reports"
	assert.Equal(t, filepath.Join("reports", "out.csv"), outputPath("out.csv"))
	abs := filepath.Join(string(filepath.Separator), "tmp", "out.csv")
	assert.Equal(t, abs, outputPath(abs))
}

func TestResolveFy(t *testing.T) {
	defer func(s config.Settings, fy float64, g string) {
		settings, sectionFy, sectionGrade = s, fy, g
	}(settings, sectionFy, sectionGrade)

	settings = config.Settings{}
	sectionFy, sectionGrade = 0, ""

	in := calc.Input{BTop: 300, TTop: 20, BBot: 100, TBot: 20, Tw: 10, H: 800}
	fy, err := resolveFy(calc.BuiltUpI, in)
	require.NoError(t, err)
	assert.Equal(t, 345.0, fy) // S355, 20 mm plate

	sectionGrade = "s235"
	fy, err = resolveFy(calc.BuiltUpI, in)
	require.NoError(t, err)
	assert.Equal(t, 225.0, fy)

	sectionFy = 300
	fy, err = resolveFy(calc.BuiltUpI, in)
	require.NoError(t, err)
	assert.Equal(t, 300.0, fy)

	sectionFy, sectionGrade = 0, "S999"
	_, err = resolveFy(calc.BuiltUpI, in)
	assert.Error(t, err)
}
