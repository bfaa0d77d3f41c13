package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownProfile is returned when a profile designation is not in the table.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile holds the nominal dimensions of a parallel-flange channel (mm).
// R is the root radius between web and flanges.
type Profile struct {
	Name string  `json:"name"`
	H    float64 `json:"h"`
	B    float64 `json:"b"`
	Tw   float64 `json:"tw"`
	Tf   float64 `json:"tf"`
	R    float64 `json:"r"`
}

// European parallel-flange channels, EN 10365 nominal dimensions.
var upeProfiles = []Profile{
	{Name: "UPE80", H: 80, B: 50, Tw: 4.0, Tf: 7.0, R: 10},
	{Name: "UPE100", H: 100, B: 55, Tw: 4.5, Tf: 7.5, R: 10},
	{Name: "UPE120", H: 120, B: 60, Tw: 5.0, Tf: 8.0, R: 12},
	{Name: "UPE140", H: 140, B: 65, Tw: 5.0, Tf: 9.0, R: 12},
	{Name: "UPE160", H: 160, B: 70, Tw: 5.5, Tf: 9.5, R: 12},
	{Name: "UPE180", H: 180, B: 75, Tw: 5.5, Tf: 10.5, R: 12},
	{Name: "UPE200", H: 200, B: 80, Tw: 6.0, Tf: 11.0, R: 13},
	{Name: "UPE220", H: 220, B: 85, Tw: 6.5, Tf: 12.0, R: 13},
	{Name: "UPE240", H: 240, B: 90, Tw: 7.0, Tf: 12.5, R: 15},
	{Name: "UPE270", H: 270, B: 95, Tw: 7.5, Tf: 13.5, R: 15},
	{Name: "UPE300", H: 300, B: 100, Tw: 9.5, Tf: 15.0, R: 15},
	{Name: "UPE330", H: 330, B: 105, Tw: 11.0, Tf: 16.0, R: 18},
	{Name: "UPE360", H: 360, B: 110, Tw: 12.0, Tf: 17.0, R: 18},
	{Name: "UPE400", H: 400, B: 115, Tw: 13.5, Tf: 18.0, R: 18},
}

// UPE looks up a channel by designation. Spaces and case are ignored, so
// "UPE 300", "upe300" and "UPE300" are the same profile.
func UPE(name string) (Profile, error) {
	key := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	for _, p := range upeProfiles {
		if p.Name == key {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// UPEProfiles returns the table ordered by depth.
func UPEProfiles() []Profile {
	out := make([]Profile, len(upeProfiles))
	copy(out, upeProfiles)
	sort.Slice(out, func(i, j int) bool { return out[i].H < out[j].H })
	return out
}
