package magic

import (
	"github.com/udisondev/d2core/internal/prng"
	"github.com/udisondev/d2core/internal/tables"
)

// MinRunewordFormatVersion is the first item format version whose save
// layout can carry a runeword.
const MinRunewordFormatVersion = 96

// RunewordQuery describes the socketed base a runeword should fit.
type RunewordQuery struct {
	ItemCode      string
	Quality       prng.Quality
	FormatVersion int32
	Sockets       int32 // sockets currently on the item
	MaxSockets    int32 // sockets the item could reach
	GameVersion   tables.Version

	// IncludeServerOnly admits runewords flagged for server-side games.
	IncludeServerOnly bool
}

// availableSockets is the larger of the actual and potential socket counts.
func (q RunewordQuery) availableSockets() int32 {
	if q.Sockets > q.MaxSockets {
		return q.Sockets
	}
	return q.MaxSockets
}

// runewordQuality reports whether the item quality can host a runeword at
// all: magic, rare, set, unique and crafted bases cannot.
func runewordQuality(q prng.Quality) bool {
	switch q {
	case prng.QualityMagic, prng.QualityRare, prng.QualitySet,
		prng.QualityUnique, prng.QualityCrafted:
		return false
	}
	return true
}

// EligibleRunewords returns every runeword the queried base can carry, in
// table order.
func EligibleRunewords(x *tables.Index, q RunewordQuery) []tables.Runeword {
	it, ok := x.ItemType(q.ItemCode)
	if !ok {
		return nil
	}
	if !runewordQuality(q.Quality) || q.FormatVersion < MinRunewordFormatVersion {
		return nil
	}

	var out []tables.Runeword
	for _, rw := range x.Runewords() {
		if rw.Version > q.GameVersion {
			continue
		}
		if rw.ServerOnly && !q.IncludeServerOnly {
			continue
		}
		need := rw.MinSockets()
		if need == 0 || need > q.availableSockets() {
			continue
		}
		if !intersects(it.Categories, rw.Include) {
			continue
		}
		if intersects(it.Categories, rw.Exclude) {
			continue
		}
		out = append(out, *rw)
	}
	return out
}

// PickRuneword selects one eligible runeword with a uniform draw, iterating
// socket-count buckets from largest to smallest the way the engine resolves
// competing words.
func PickRuneword(x *tables.Index, q RunewordQuery, g *prng.Generator) (tables.Runeword, bool) {
	eligible := EligibleRunewords(x, q)
	if len(eligible) == 0 {
		return tables.Runeword{}, false
	}

	for need := q.availableSockets(); need >= 1; need-- {
		var bucket []tables.Runeword
		for _, rw := range eligible {
			if rw.MinSockets() == need {
				bucket = append(bucket, rw)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		return bucket[g.Roll(uint32(len(bucket)))], true
	}
	return tables.Runeword{}, false
}
