package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the closed, ordered rarity scale of catalog items
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
	RarityUnique    Rarity = "unique"
)

// Rarities lists every rarity from lowest to highest
var Rarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
	RarityUnique,
}

var rarityDisplayNames = map[Rarity]string{
	RarityCommon:    "peñomún",
	RarityRare:      "peñarro",
	RarityEpic:      "peñepico",
	RarityLegendary: "peñendario",
	RarityMythic:    "peñandario",
	RarityUnique:    "peñada real",
}

// titleCase builds a fresh Caser per call; a Caser is not safe for concurrent use
func titleCase(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// Valid reports whether r is a known rarity
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Rank returns the position of r on the rarity scale, or -1 when unknown
func (r Rarity) Rank() int {
	for i, known := range Rarities {
		if known == r {
			return i
		}
	}
	return -1
}

// Lower returns the next lower rarity. ok is false for the lowest rarity.
func (r Rarity) Lower() (Rarity, bool) {
	rank := r.Rank()
	if rank <= 0 {
		return "", false
	}
	return Rarities[rank-1], true
}

// Higher returns the next higher rarity. ok is false for the highest rarity.
func (r Rarity) Higher() (Rarity, bool) {
	rank := r.Rank()
	if rank < 0 || rank >= len(Rarities)-1 {
		return "", false
	}
	return Rarities[rank+1], true
}

// DisplayName returns the in-app name of the rarity
func (r Rarity) DisplayName() string {
	if name, ok := rarityDisplayNames[r]; ok {
		return titleCase(name)
	}
	return titleCase(string(r))
}

// ParseRarity converts a raw string into a Rarity
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
	}
	return r, nil
}
