package magic

import "github.com/udisondev/d2core/internal/tables"

// durationChainPos is the chain position holding a duration sub-value
// (min/max/duration triplets). Duration contributions average across
// occurrences instead of summing.
const durationChainPos = 2

// mergeChained folds attributes belonging to one stat chain into a single
// attribute keyed by the chain head, preserving the position of the first
// occurrence in the output. Magnitude sub-values of duplicate occurrences
// sum; duration sub-values average. Chain members without a contributing
// draw are pruned after the merge.
func mergeChained(x *tables.Index, attrs []Attribute) []Attribute {
	type chainAcc struct {
		outIdx int
		sums   map[int]int64
		counts map[int]int
	}

	var out []Attribute
	chains := make(map[int32]*chainAcc)

	for _, attr := range attrs {
		head, pos, ok := x.ChainPosition(attr.StatID)
		if !ok {
			out = append(out, attr)
			continue
		}

		acc, seen := chains[head]
		if !seen {
			acc = &chainAcc{
				outIdx: len(out),
				sums:   make(map[int]int64),
				counts: make(map[int]int),
			}
			chains[head] = acc
			// Placeholder holding the chain's slot in output order.
			out = append(out, Attribute{
				StatID:      head,
				Priority:    attr.Priority,
				Visible:     attr.Visible,
				GameVersion: attr.GameVersion,
			})
		}

		if len(attr.Values) == 0 {
			continue
		}
		acc.sums[pos] += int64(attr.Values[0])
		acc.counts[pos]++
	}

	for head, acc := range chains {
		merged := &out[acc.outIdx]
		chain := x.Chain(head)
		for pos := range chain {
			n := acc.counts[pos]
			if n == 0 {
				// No draw contributed to this chain member; pruned.
				continue
			}
			v := acc.sums[pos]
			if pos == durationChainPos {
				v /= int64(n)
			}
			merged.Values = append(merged.Values, int32(v))
		}
	}

	// Chains where nothing contributed at all collapse to empty value
	// lists; drop them entirely.
	filtered := out[:0]
	for _, attr := range out {
		if _, isChain := chains[attr.StatID]; isChain && len(attr.Values) == 0 {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
