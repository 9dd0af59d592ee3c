package dataset

import "strings"

// Node represents one character from the nodes file.
// Label is the character name and is unique within a dataset; it is the
// join key used by the edge table.
type Node struct {
	Label string
	House string
}

// Edge represents a weighted interaction between two characters.
// Source and Target are character labels and must resolve to loaded nodes.
// Weight is a positive interaction count.
type Edge struct {
	Source string
	Target string
	Weight int
}

// HouseOther is the fallback bucket for house values outside the
// canonical set.
const HouseOther = "other"

// CanonicalHouses is the closed category set for the house column.
// Anything else normalizes to HouseOther.
var CanonicalHouses = []string{
	"gryffindor",
	"slytherin",
	"hufflepuff",
	"ravenclaw",
}

// NormalizeHouse lowercases and trims a house value and maps values
// outside the canonical set to HouseOther.
func NormalizeHouse(house string) string {
	h := strings.ToLower(strings.TrimSpace(house))
	for _, canonical := range CanonicalHouses {
		if h == canonical {
			return h
		}
	}
	return HouseOther
}
