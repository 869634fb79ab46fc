package tables

import (
	"log/slog"

	"github.com/udisondev/d2core/internal/desc"
)

// loadStats ingests the stat definition table, including the chained-stat
// links and per-era save-bit metadata consumed by the save serializer.
func (x *Index) loadStats(src Source) {
	t, ok := src.Table(TableStats)
	if !ok {
		slog.Warn("stat table missing", "table", TableStats)
		return
	}

	name := ResolveColumn(t, "Stat", "stat")
	id := ResolveColumn(t, "ID", "Id", "*ID")
	if !name.Found() || !id.Found() {
		slog.Warn("stat table unusable, required column missing", "table", TableStats)
		return
	}

	descFunc := ResolveColumn(t, "descfunc", "DescFunc")
	descVal := ResolveColumn(t, "descval", "DescVal")
	descPos := ResolveColumn(t, "descstrpos", "DescStrPos")
	descNeg := ResolveColumn(t, "descstrneg", "DescStrNeg")
	descGroup := ResolveColumn(t, "dgrpstrpos", "DescGroup")
	priority := ResolveColumn(t, "descpriority", "DescPriority")
	chain := ResolveColumn(t, "maxstat", "MaxStat", "nextinchain")

	saveBits := ResolveColumn(t, "Save Bits", "savebits")
	saveAdd := ResolveColumn(t, "Save Add", "saveadd")
	saveParam := ResolveColumn(t, "Save Param Bits", "saveparambits")
	saveBitsOld := ResolveColumn(t, "1.09-Save Bits", "oldsavebits")
	saveAddOld := ResolveColumn(t, "1.09-Save Add", "oldsaveadd")
	saveParamOld := ResolveColumn(t, "1.09-Save Param Bits", "oldsaveparambits")

	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" {
			continue
		}

		s := &Stat{
			ID:           id.Int32(row),
			Name:         n,
			NextInChain:  -1,
			DescFunc:     desc.Func(descFunc.Int32(row)),
			DescVal:      descVal.Int32(row),
			DescPositive: descPos.String(row),
			DescNegative: descNeg.String(row),
			DescGroup:    descGroup.String(row),
			Priority:     priority.Int32(row),
			Current: SaveSpec{
				Bits:      saveBits.Int32(row),
				Add:       saveAdd.Int32(row),
				ParamBits: saveParam.Int32(row),
			},
		}

		// Legacy save bits fall back to the current ones when the table
		// predates the split columns.
		s.Legacy = s.Current
		if saveBitsOld.Found() {
			s.Legacy = SaveSpec{
				Bits:      saveBitsOld.Int32(row),
				Add:       saveAddOld.Int32(row),
				ParamBits: saveParamOld.Int32(row),
			}
		}

		// The chain column names the linked stat; resolve to an id in a
		// second pass since the target may not be ingested yet.
		x.statsByID[s.ID] = s
		x.statsByName[s.Name] = s
	}

	// Second pass: resolve chain links by name.
	chainCol := chain
	if chainCol.Found() {
		for row := 0; row < t.Rows(); row++ {
			n := name.String(row)
			if n == "" {
				continue
			}
			next := chainCol.String(row)
			if next == "" {
				continue
			}
			if target, ok := x.statsByName[next]; ok {
				x.statsByName[n].NextInChain = target.ID
			}
		}
	}

	x.buildChainPositions()
	slog.Info("loaded stats", "count", len(x.statsByID))
}

type chainLink struct {
	head int32
	pos  int
}

// buildChainPositions assigns every chain member its head stat and position.
// Heads are chained stats nobody links to.
func (x *Index) buildChainPositions() {
	linked := make(map[int32]bool)
	for _, s := range x.statsByID {
		if s.NextInChain >= 0 {
			linked[s.NextInChain] = true
		}
	}
	for id, s := range x.statsByID {
		if s.NextInChain < 0 || linked[id] {
			continue
		}
		for pos, member := range x.Chain(id) {
			x.chainPos[member] = chainLink{head: id, pos: pos}
		}
	}
}

// ChainPosition returns the head stat id and zero-based position of id
// within its chain. ok is false for standalone stats.
func (x *Index) ChainPosition(id int32) (head int32, pos int, ok bool) {
	link, ok := x.chainPos[id]
	return link.head, link.pos, ok
}

// Chain returns the ordered stat ids of the chain headed by id: the head
// itself followed by each linked stat. A standalone stat yields just itself.
// Cycles in the data terminate at the first revisited id.
func (x *Index) Chain(id int32) []int32 {
	var out []int32
	seen := make(map[int32]bool)
	for {
		if seen[id] {
			return out
		}
		seen[id] = true
		s, ok := x.statsByID[id]
		if !ok {
			return out
		}
		out = append(out, id)
		if s.NextInChain < 0 {
			return out
		}
		id = s.NextInChain
	}
}
