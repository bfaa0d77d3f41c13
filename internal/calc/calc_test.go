package calc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alexiusacademia/gosect/internal/catalog"
	"github.com/alexiusacademia/gosect/internal/section"
	"github.com/alexiusacademia/gosect/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtUpInput() Input {
	return Input{Fy: 355, BTop: 300, TTop: 20, BBot: 100, TBot: 20, Tw: 10, H: 800}
}

func lrInput() Input {
	return Input{Fy: 355, D: 323, T: 12, Channel: "UPE300", GapBack: 28.9}
}

func tbInput() Input {
	return Input{Fy: 355, D: 323, T: 12, Channel: "UPE300", YC: 190.4}
}

func upe300(t *testing.T, o shape.Opening) *shape.Channel {
	t.Helper()
	c, err := shape.NewChannel(300, 100, 9.5, 15, 15, o)
	require.NoError(t, err)
	return c
}

func TestCalculate_CHSScenario(t *testing.T) {
	r, err := Calculate(CHS, Input{Fy: 355, D: 323, T: 12})
	require.NoError(t, err)

	area := math.Pi / 4 * (323*323 - 299*299)
	ix := math.Pi / 64 * (math.Pow(323, 4) - math.Pow(299, 4))
	me := 355 * ix / 161.5 / 1e6
	mp := 355 * (math.Pow(323, 3) - math.Pow(299, 3)) / 6 / 1e6

	assert.InDelta(t, area, r.Area, area*1e-3)
	assert.InDelta(t, ix, r.Ix, ix*1e-3)
	assert.InDelta(t, me, r.X.Me, me*1e-3)
	assert.InDelta(t, mp, r.X.Mp, mp*1e-3)
	assert.Equal(t, "CHS", r.Label)
	assert.Greater(t, r.X.ShapeFactor, 1.0)
}

func TestCalculate_BuiltUpI(t *testing.T) {
	r, err := Calculate(BuiltUpI, builtUpInput())
	require.NoError(t, err)

	assert.InDelta(t, 15600.0, r.Area, 1e-9)

	// ȳ from the bottom fiber
	ybar := (2000*10 + 7600*400 + 6000*790) / 15600.0
	assert.InDelta(t, ybar, r.Centroid.Y, 1e-9)
	assert.InDelta(t, ybar, r.CentroidFromBottom(), 1e-9)

	ix := 100*math.Pow(20, 3)/12 + 2000*math.Pow(10-ybar, 2) +
		10*math.Pow(760, 3)/12 + 7600*math.Pow(400-ybar, 2) +
		300*math.Pow(20, 3)/12 + 6000*math.Pow(790-ybar, 2)
	assert.InDelta(t, ix, r.Ix, 1e-3)
	assert.InDelta(t, ix/(800-ybar), r.X.We, 1e-3)

	// neutral axis in the web, 200 mm below the top fiber
	assert.InDelta(t, 600.0, r.X.PNA, 1e-5)
	assert.InDelta(t, 4164000.0, r.X.Wp, 1.0)
	assert.InDelta(t, 355*4164000.0/1e6, r.X.Mp, 1e-3)
	assert.InDelta(t, r.X.Wp/r.X.We, r.X.ShapeFactor, 1e-12)

	// symmetric about y
	assert.InDelta(t, 0, r.Y.PNA, 1e-9)
	wpy := 20*300*300/4.0 + 20*100*100/4.0 + 760*10*10/4.0
	assert.InDelta(t, wpy, r.Y.Wp, 1e-3)
	assert.Equal(t, 800.0, r.Depth)
	assert.Equal(t, 300.0, r.Width)
}

func TestCalculate_CHSUPELR(t *testing.T) {
	r, err := Calculate(CHSUPELR, lrInput())
	require.NoError(t, err)

	tube, err := shape.NewTube(323, 12)
	require.NoError(t, err)
	ch := upe300(t, shape.OpenRight)
	xc := 161.5 + 28.9/2 + ch.BackToCentroid()

	assert.InDelta(t, xc, r.XC, 1e-9)
	assert.Zero(t, r.YC)
	assert.InDelta(t, tube.Area()+2*ch.Area(), r.Area, 1e-6)
	assert.InDelta(t, 0, r.Centroid.X, 1e-9)
	assert.InDelta(t, 0, r.Centroid.Y, 1e-9)

	ix := tube.SecondMoment(shape.AxisX) + 2*ch.SecondMoment(shape.AxisX)
	iy := tube.SecondMoment(shape.AxisY) + 2*(ch.SecondMoment(shape.AxisY)+ch.Area()*xc*xc)
	assert.InDelta(t, ix, r.Ix, ix*1e-12)
	assert.InDelta(t, iy, r.Iy, iy*1e-12)

	// tube governs the depth about x
	assert.InDelta(t, ix/161.5, r.X.We, 1e-6)
	_, hi := ch.Extent(shape.AxisY)
	assert.InDelta(t, iy/(xc+hi), r.Y.We, 1e-6)

	assert.InDelta(t, 0, r.X.PNA, 1e-6)
	assert.InDelta(t, 0, r.Y.PNA, 1e-6)

	wpTube := (math.Pow(323, 3) - math.Pow(299, 3)) / 6
	wpx := wpTube + 2*2*ch.MomentAbove(shape.AxisX, 0)
	assert.InDelta(t, wpx, r.X.Wp, wpx*1e-9)
	wpy := wpTube + 2*ch.Area()*xc
	assert.InDelta(t, wpy, r.Y.Wp, wpy*1e-9)

	assert.Greater(t, r.X.ShapeFactor, 1.0)
	assert.Greater(t, r.Y.ShapeFactor, 1.0)
}

func TestCalculate_CHSUPETB(t *testing.T) {
	r, err := Calculate(CHSUPETB, tbInput())
	require.NoError(t, err)

	tube, err := shape.NewTube(323, 12)
	require.NoError(t, err)
	ch := upe300(t, shape.OpenUp)

	ix := tube.SecondMoment(shape.AxisX) + 2*(ch.SecondMoment(shape.AxisX)+ch.Area()*190.4*190.4)
	iy := tube.SecondMoment(shape.AxisY) + 2*ch.SecondMoment(shape.AxisY)
	assert.InDelta(t, ix, r.Ix, ix*1e-12)
	assert.InDelta(t, iy, r.Iy, iy*1e-12)
	assert.Equal(t, 190.4, r.YC)

	// channel flange tips govern about x, channel web ends about y
	_, hi := ch.Extent(shape.AxisX)
	assert.InDelta(t, ix/(190.4+hi), r.X.We, 1e-6)
	assert.InDelta(t, iy/161.5, r.Y.We, 1e-6)

	wpTube := (math.Pow(323, 3) - math.Pow(299, 3)) / 6
	assert.InDelta(t, wpTube+2*ch.Area()*190.4, r.X.Wp, 1e-3)
	assert.InDelta(t, 0, r.X.PNA, 1e-6)
	assert.Greater(t, r.X.ShapeFactor, 1.0)
}

func TestCalculate_TBOverlapRejected(t *testing.T) {
	in := tbInput()
	in.YC = 190.3 // back face of the channel about 0.07 mm inside the tube
	_, err := Calculate(CHSUPETB, in)
	assert.ErrorIs(t, err, shape.ErrInvalidGeometry)

	// sharp corners move the centroid away from the back
	in = tbInput()
	in.Channel = ""
	in.ChannelH, in.ChannelB, in.ChannelTw, in.ChannelTf = 300, 100, 9.5, 15
	_, err = Calculate(CHSUPETB, in)
	assert.ErrorIs(t, err, shape.ErrInvalidGeometry)

	// touching is allowed
	in.YC = 161.5 + upe300(t, shape.OpenUp).BackToCentroid()
	_, err = Calculate(CHSUPETB, in)
	assert.NoError(t, err)
}

func TestCalculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   Input
		want error
	}{
		{"zero CHS thickness", CHS, Input{Fy: 355, D: 323, T: 0}, shape.ErrInvalidGeometry},
		{"flanges deeper than section", BuiltUpI, Input{Fy: 355, BTop: 300, TTop: 400, BBot: 100, TBot: 400, Tw: 10, H: 800}, shape.ErrInvalidGeometry},
		{"negative web", BuiltUpI, Input{Fy: 355, BTop: 300, TTop: 20, BBot: 100, TBot: 20, Tw: -10, H: 800}, shape.ErrInvalidGeometry},
		{"negative gap", CHSUPELR, Input{Fy: 355, D: 323, T: 12, Channel: "UPE300", GapBack: -1}, shape.ErrInvalidGeometry},
		{"missing channel", CHSUPELR, Input{Fy: 355, D: 323, T: 12}, shape.ErrInvalidGeometry},
		{"missing y_c", CHSUPETB, Input{Fy: 355, D: 323, T: 12, Channel: "UPE300"}, shape.ErrInvalidGeometry},
		{"unknown profile", CHSUPELR, Input{Fy: 355, D: 323, T: 12, Channel: "UPE999"}, catalog.ErrUnknownProfile},
		{"zero fy", CHS, Input{D: 323, T: 12}, ErrInvalidMaterial},
		{"unknown kind", Kind(42), builtUpInput(), ErrUnknownSectionType},
		{"zero kind", Kind(0), builtUpInput(), ErrUnknownSectionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.kind, tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, r)
		})
	}
}

// weightless has no first moment on either side of any cut, so its plastic
// modulus is zero.
type weightless struct{ shape.Rectangle }

func (weightless) MomentAbove(shape.Axis, float64) float64 { return 0 }

func TestEvaluate_FailedQueryDiscardsResult(t *testing.T) {
	r, err := shape.NewRectangle(100, 200)
	require.NoError(t, err)
	s := section.New("weightless")
	require.NoError(t, s.Add(weightless{r}, shape.Point{}))

	res, err := evaluate(CHS, 355, s, placement{})
	assert.ErrorIs(t, err, section.ErrShapeFactor)
	assert.Nil(t, res)
}

func TestCalculate_ExplicitChannelDims(t *testing.T) {
	byName, err := Calculate(CHSUPELR, lrInput())
	require.NoError(t, err)

	in := lrInput()
	in.Channel = ""
	in.ChannelH, in.ChannelB, in.ChannelTw, in.ChannelTf, in.ChannelR = 300, 100, 9.5, 15, 15
	byDims, err := Calculate(CHSUPELR, in)
	require.NoError(t, err)

	assert.Equal(t, byName.Ix, byDims.Ix)
	assert.Equal(t, byName.X.Wp, byDims.X.Wp)
}

func TestCalculate_Repeatable(t *testing.T) {
	for _, kind := range []Kind{BuiltUpI, CHSUPELR, CHSUPETB} {
		in := map[Kind]Input{BuiltUpI: builtUpInput(), CHSUPELR: lrInput(), CHSUPETB: tbInput()}[kind]
		a, err := Calculate(kind, in)
		require.NoError(t, err)
		b, err := Calculate(kind, in)
		require.NoError(t, err)
		assert.Equal(t, a, b, kind.String())
	}
}

func TestBuild_ReturnsAssemblingSection(t *testing.T) {
	s, err := Build(CHSUPELR, lrInput())
	require.NoError(t, err)
	assert.False(t, s.Frozen())
	assert.Len(t, s.Parts(), 3)

	_ = s.Area()
	tube, err := shape.NewTube(100, 5)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Add(tube, shape.Point{}), section.ErrSectionFrozen)
}

func TestCalculateAll(t *testing.T) {
	jobs := []Job{
		{Kind: BuiltUpI, Input: builtUpInput()},
		{Kind: CHSUPELR, Input: lrInput()},
		{Kind: CHSUPETB, Input: tbInput()},
		{Kind: CHS, Input: Input{Label: "tube", Fy: 355, D: 323, T: 12}},
	}
	results, err := CalculateAll(jobs)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, BuiltUpI, results[0].Kind)
	assert.Equal(t, CHSUPELR, results[1].Kind)
	assert.Equal(t, CHSUPETB, results[2].Kind)
	assert.Equal(t, "tube", results[3].Label)

	jobs[2].Input.YC = 10
	results, err = CalculateAll(jobs)
	assert.ErrorIs(t, err, shape.ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "section 3")
	assert.Nil(t, results)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"BuiltUpI", BuiltUpI},
		{"builtupi", BuiltUpI},
		{"built-up-i", BuiltUpI},
		{"BUILTUP_I", BuiltUpI},
		{"CHS", CHS},
		{"CHS_UPE_LR", CHSUPELR},
		{"chs-upe-lr", CHSUPELR},
		{" CHS_UPE_TB ", CHSUPETB},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKind("HEA300")
	assert.ErrorIs(t, err, ErrUnknownSectionType)
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestJob_JSON(t *testing.T) {
	data := []byte(`{"type":"CHS_UPE_TB","label":"TB","fy":355,"d":323,"t":12,"channel":"UPE 300","y_c":191}`)
	var job Job
	require.NoError(t, json.Unmarshal(data, &job))
	assert.Equal(t, CHSUPETB, job.Kind)
	assert.Equal(t, "TB", job.Label)
	assert.Equal(t, 191.0, job.YC)

	out, err := json.Marshal(job)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"type":"CHS_UPE_TB"`)

	err = json.Unmarshal([]byte(`{"type":"box"}`), &job)
	assert.ErrorIs(t, err, ErrUnknownSectionType)
}

func TestGoverningThickness(t *testing.T) {
	got, err := builtUpInput().GoverningThickness(BuiltUpI)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)

	got, err = lrInput().GoverningThickness(CHSUPELR)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)

	_, err = lrInput().GoverningThickness(Kind(0))
	assert.ErrorIs(t, err, ErrUnknownSectionType)
}

func TestResult_Notes(t *testing.T) {
	r, err := Calculate(CHSUPELR, lrInput())
	require.NoError(t, err)
	require.NotEmpty(t, r.Notes)
	assert.Contains(t, r.Notes[0], "x = ±")
}
