package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownGrade is returned for steel grades not in the table.
var ErrUnknownGrade = errors.New("unknown steel grade")

// Band is a thickness range with its minimum yield strength.
type Band struct {
	MaxThickness float64 // mm, inclusive
	Fy           float64 // MPa
}

// Grade is a structural steel grade to EN 10025-2.
type Grade struct {
	Name  string
	Bands []Band
}

// Steel grades, yield strength vs nominal thickness (EN 10025-2 Table 7)
var grades = []Grade{
	{Name: "S235", Bands: []Band{{16, 235}, {40, 225}, {63, 215}, {80, 215}, {100, 215}}},
	{Name: "S275", Bands: []Band{{16, 275}, {40, 265}, {63, 255}, {80, 245}, {100, 235}}},
	{Name: "S355", Bands: []Band{{16, 355}, {40, 345}, {63, 335}, {80, 325}, {100, 315}}},
	{Name: "S460", Bands: []Band{{16, 460}, {40, 440}, {63, 430}, {80, 410}, {100, 400}}},
}

// ParseGrade looks up a grade by name, ignoring case.
func ParseGrade(name string) (Grade, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range grades {
		if g.Name == key {
			return g, nil
		}
	}
	return Grade{}, fmt.Errorf("%w: %q", ErrUnknownGrade, name)
}

// Grades returns all known grades.
func Grades() []Grade {
	out := make([]Grade, len(grades))
	copy(out, grades)
	return out
}

// Yield returns fy for the governing (thickest) element t in mm.
func (g Grade) Yield(t float64) (float64, error) {
	if !(t > 0) {
		return 0, fmt.Errorf("thickness must be positive, got %g", t)
	}
	for _, b := range g.Bands {
		if t <= b.MaxThickness {
			return b.Fy, nil
		}
	}
	last := g.Bands[len(g.Bands)-1]
	return 0, fmt.Errorf("%s: thickness %.1f mm exceeds tabulated %.0f mm", g.Name, t, last.MaxThickness)
}

// Nominal returns fy for the thinnest band.
func (g Grade) Nominal() float64 {
	return g.Bands[0].Fy
}

// MaxThickness returns the largest of the given element thicknesses.
func MaxThickness(ts ...float64) float64 {
	m := 0.0
	for _, t := range ts {
		m = math.Max(m, t)
	}
	return m
}
