package magic

import "github.com/udisondev/d2core/internal/tables"

// affixLevelBuffer is the engine's off-by-two eligibility window: an affix
// of level N spawns on items of level N-2 and up.
const affixLevelBuffer = 2

// Candidates returns the magic prefixes and suffixes eligible for an item
// code at the given level and game version. An unknown item code yields two
// empty pools.
func Candidates(x *tables.Index, itemCode string, level int32, gameVersion tables.Version) (prefixes, suffixes []tables.Affix) {
	it, ok := x.ItemType(itemCode)
	if !ok {
		return nil, nil
	}

	for _, a := range x.Affixes() {
		if !eligible(a, it, level, gameVersion) {
			continue
		}
		switch a.Kind {
		case tables.AffixPrefix:
			prefixes = append(prefixes, *a)
		case tables.AffixSuffix:
			suffixes = append(suffixes, *a)
		}
	}
	return prefixes, suffixes
}

// RareCandidates returns the rare affix pools under the same eligibility
// rules.
func RareCandidates(x *tables.Index, itemCode string, level int32, gameVersion tables.Version) (prefixes, suffixes []tables.Affix) {
	it, ok := x.ItemType(itemCode)
	if !ok {
		return nil, nil
	}

	for _, a := range x.Affixes() {
		if !eligible(a, it, level, gameVersion) {
			continue
		}
		switch a.Kind {
		case tables.AffixRarePrefix:
			prefixes = append(prefixes, *a)
		case tables.AffixRareSuffix:
			suffixes = append(suffixes, *a)
		}
	}
	return prefixes, suffixes
}

func eligible(a *tables.Affix, it tables.ItemType, level int32, gameVersion tables.Version) bool {
	if !a.Spawnable {
		return false
	}
	if a.Version > gameVersion {
		return false
	}
	if a.MinLevel-affixLevelBuffer > level {
		return false
	}
	if a.MaxLevel > 0 && level > a.MaxLevel {
		return false
	}
	if !intersects(it.Categories, a.Include) {
		return false
	}
	if intersects(it.Categories, a.Exclude) {
		return false
	}
	return true
}

func intersects(categories, list []string) bool {
	for _, c := range categories {
		for _, l := range list {
			if c == l {
				return true
			}
		}
	}
	return false
}
