package annotate

import "github.com/dd0wney/storygraph/pkg/dataset"

// Palette holds the presentation color tables: an ordered sequential
// ramp for metric ranks and a fixed house color lookup.
type Palette struct {
	// Colors is ordered from the light end to the dark end of the ramp.
	Colors []string
	// Houses maps canonical house names to hex colors.
	Houses map[string]string
}

// DefaultPalette returns the built-in color profile.
func DefaultPalette() Palette {
	return Palette{
		Colors: []string{
			"#FFFFCC",
			"#FFEDA0",
			"#FED976",
			"#FEB24C",
			"#FD8D3C",
			"#FC4E2A",
			"#E31A1C",
			"#B10026",
		},
		Houses: map[string]string{
			"gryffindor":      "#AE0001",
			"slytherin":       "#2A623D",
			"hufflepuff":      "#FFDB00",
			"ravenclaw":       "#222F5B",
			dataset.HouseOther: "#888888",
		},
	}
}

// IndexFor maps a dense rank to a 1-based palette index using the
// inversion size+1-rank: rank 1 takes the dark end of the ramp, and
// ranks beyond the palette size clamp to the light end. Tied ranks map
// to the same index.
func (p Palette) IndexFor(rank int) int {
	size := len(p.Colors)
	if size == 0 {
		return 0
	}
	idx := size + 1 - rank
	if idx < 1 {
		idx = 1
	}
	if idx > size {
		idx = size
	}
	return idx
}

// ColorFor returns the ramp color for a dense rank.
func (p Palette) ColorFor(rank int) string {
	idx := p.IndexFor(rank)
	if idx == 0 {
		return ""
	}
	return p.Colors[idx-1]
}

// HouseColor returns the color for a house, falling back to the
// "other" bucket for anything unmapped.
func (p Palette) HouseColor(house string) string {
	if c, ok := p.Houses[house]; ok {
		return c
	}
	return p.Houses[dataset.HouseOther]
}
