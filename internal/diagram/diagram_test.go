package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gosect/internal/section"
	"github.com/alexiusacademia/gosect/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tee returns a T: 10×200 web under a 200×20 flange.
func tee(t *testing.T) *section.Section {
	t.Helper()
	web, err := shape.NewRectangle(10, 200)
	require.NoError(t, err)
	flange, err := shape.NewRectangle(200, 20)
	require.NoError(t, err)

	s := section.New("Tee")
	s.MustAdd(web, shape.Point{Y: 100})
	s.MustAdd(flange, shape.Point{Y: 210})
	return s
}

func TestFromSection(t *testing.T) {
	d, err := FromSection(tee(t))
	require.NoError(t, err)

	assert.Equal(t, "Tee", d.Title)
	assert.Equal(t, -100.0, d.MinX)
	assert.Equal(t, 100.0, d.MaxX)
	assert.Equal(t, 0.0, d.MinY)
	assert.Equal(t, 220.0, d.MaxY)
	assert.InDelta(t, 205.0, d.PNAX, 1e-6)
	assert.InDelta(t, 0.0, d.PNAY, 1e-9)
	assert.Len(t, d.Outlines, 2)
	assert.Equal(t, shape.Point{X: -5, Y: 0}, d.Outlines[0][0])
}

func TestFromSection_Empty(t *testing.T) {
	_, err := FromSection(section.New("empty"))
	assert.ErrorIs(t, err, section.ErrEmptySection)
}

func TestDrawASCIISection(t *testing.T) {
	d, err := FromSection(tee(t))
	require.NoError(t, err)

	out := DrawASCIISection(d, 40)
	lines := strings.Split(out, "\n")

	var flangeRows, webRows int
	for _, l := range lines {
		if !strings.HasPrefix(l, "  │") {
			continue
		}
		switch n := strings.Count(l, "█"); {
		case n == 40:
			flangeRows++
		case n > 0 && n < 5:
			webRows++
		}
	}
	assert.GreaterOrEqual(t, flangeRows, 1)
	assert.Greater(t, webRows, flangeRows)
	assert.Contains(t, out, "y* (plastic)")
	assert.Contains(t, out, "ȳ (elastic)")
	assert.Contains(t, out, "220 mm")

	assert.Empty(t, DrawASCIISection(SectionDiagramData{}, 40))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Saved", []string{"CSV → out/sections.csv"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	// every line has the same visible width
	want := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, want, len([]rune(l)), l)
	}
}

func TestExportSectionDiagram(t *testing.T) {
	d, err := FromSection(tee(t))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"tee.png", "tee.svg", "nested/tee.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportSectionDiagram(d, path), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, ExportSectionDiagram(d, filepath.Join(dir, "tee")))
	_, err = os.Stat(filepath.Join(dir, "tee.png"))
	assert.NoError(t, err)

	assert.Error(t, ExportSectionDiagram(SectionDiagramData{Title: "none"}, filepath.Join(dir, "none.png")))
}
