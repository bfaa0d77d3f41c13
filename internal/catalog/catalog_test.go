package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPE_Lookup(t *testing.T) {
	for _, name := range []string{"UPE300", "upe300", "UPE 300"} {
		p, err := UPE(name)
		require.NoError(t, err, name)
		assert.Equal(t, 300.0, p.H)
		assert.Equal(t, 100.0, p.B)
		assert.Equal(t, 9.5, p.Tw)
		assert.Equal(t, 15.0, p.Tf)
	}

	_, err := UPE("UPN300")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestUPE_TableIsValid(t *testing.T) {
	profiles := UPEProfiles()
	require.NotEmpty(t, profiles)
	for i, p := range profiles {
		assert.Less(t, p.Tw, p.B, p.Name)
		assert.Less(t, 2*p.Tf, p.H, p.Name)
		if i > 0 {
			assert.Greater(t, p.H, profiles[i-1].H)
		}
	}
}

func TestGrade_Yield(t *testing.T) {
	g, err := ParseGrade(" s355 ")
	require.NoError(t, err)
	assert.Equal(t, 355.0, g.Nominal())

	tests := []struct {
		t  float64
		fy float64
	}{
		{12, 355},
		{16, 355},
		{16.1, 345},
		{40, 345},
		{50, 335},
		{100, 315},
	}
	for _, tt := range tests {
		fy, err := g.Yield(tt.t)
		require.NoError(t, err)
		assert.Equal(t, tt.fy, fy, "t=%v", tt.t)
	}

	_, err = g.Yield(120)
	assert.Error(t, err)
	_, err = g.Yield(0)
	assert.Error(t, err)

	_, err = ParseGrade("S690")
	assert.ErrorIs(t, err, ErrUnknownGrade)
	assert.Len(t, Grades(), 4)
}

func TestMaxThickness(t *testing.T) {
	assert.Equal(t, 20.0, MaxThickness(12, 20, 9.5))
	assert.Equal(t, 0.0, MaxThickness())
}
