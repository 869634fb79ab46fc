package tables

import "log/slog"

// loadCategories ingests the item-type category table. A missing required
// column aborts ingestion for the table, leaving category lookups empty
// (degraded, not fatal: legacy table formats omit later-added columns).
func (x *Index) loadCategories(src Source) {
	t, ok := src.Table(TableItemTypes)
	if !ok {
		slog.Warn("category table missing", "table", TableItemTypes)
		return
	}

	code := ResolveColumn(t, "Code", "code")
	name := ResolveColumn(t, "ItemType", "itemtype", "Name")
	if !code.Found() || !name.Found() {
		slog.Warn("category table unusable, required column missing", "table", TableItemTypes)
		return
	}

	equiv1 := ResolveColumn(t, "Equiv1", "equiv1")
	equiv2 := ResolveColumn(t, "Equiv2", "equiv2")
	bodyLoc1 := ResolveColumn(t, "BodyLoc1", "bodyloc1")
	bodyLoc2 := ResolveColumn(t, "BodyLoc2", "bodyloc2")
	body := ResolveColumn(t, "Body", "body")
	beltable := ResolveColumn(t, "Beltable", "beltable")
	maxSock1 := ResolveColumn(t, "MaxSockets1", "MaxSock1", "maxsockets1")
	maxSock2 := ResolveColumn(t, "MaxSockets2", "MaxSock25", "maxsockets2")
	maxSock3 := ResolveColumn(t, "MaxSockets3", "MaxSock40", "maxsockets3")
	sockLvl1 := ResolveColumn(t, "MaxSocketsLevelThreshold1", "maxsocketslevelthreshold1")
	sockLvl2 := ResolveColumn(t, "MaxSocketsLevelThreshold2", "maxsocketslevelthreshold2")

	for row := 0; row < t.Rows(); row++ {
		c := code.String(row)
		if c == "" {
			continue
		}

		cat := &Category{
			Code:     c,
			Name:     name.String(row),
			Beltable: beltable.Bool(row),
			BodyPart: body.Bool(row),
		}
		for _, parent := range []string{equiv1.String(row), equiv2.String(row)} {
			if parent != "" {
				cat.Parents = append(cat.Parents, parent)
			}
		}
		for _, slot := range []string{bodyLoc1.String(row), bodyLoc2.String(row)} {
			if slot != "" {
				cat.EquipSlots = append(cat.EquipSlots, slot)
			}
		}

		// Socket tier thresholds: tier 1 up to the first level threshold,
		// tier 2 up to the second, tier 3 beyond it.
		lvl1 := sockLvl1.Int32(row)
		lvl2 := sockLvl2.Int32(row)
		if lvl1 == 0 {
			lvl1 = 25
		}
		if lvl2 == 0 {
			lvl2 = 40
		}
		cat.SocketTiers = []SocketTier{
			{MaxLevel: lvl1, Sockets: maxSock1.Int32(row)},
			{MaxLevel: lvl2, Sockets: maxSock2.Int32(row)},
			{MaxLevel: 99, Sockets: maxSock3.Int32(row)},
		}

		x.categories[c] = cat
	}

	slog.Info("loaded item categories", "count", len(x.categories))
}

// MaxSockets returns the socket cap for a category at the given item level.
func (c Category) MaxSockets(level int32) int32 {
	for _, tier := range c.SocketTiers {
		if level <= tier.MaxLevel {
			return tier.Sockets
		}
	}
	if n := len(c.SocketTiers); n > 0 {
		return c.SocketTiers[n-1].Sockets
	}
	return 0
}

// categoryClosure walks the category graph from the primary type code and
// returns the deduplicated closure in visit order, plus the merged beltable
// flag.
//
// The walk order is a reproduced behavior of the source data format:
// categories come off the front of the queue, but parent codes are enqueued
// depth-first (pushed to the front in declaration order). The secondary type
// code and the literal quest marker are appended only after the primary
// closure is exhausted. Category-dependent affix filtering relies on this
// exact order.
func (x *Index) categoryClosure(primary, secondary string, quest bool) (codes []string, beltable bool) {
	visited := make(map[string]bool)

	walk := func(start string) {
		if start == "" {
			return
		}
		queue := []string{start}
		for len(queue) > 0 {
			code := queue[0]
			queue = queue[1:]
			if visited[code] {
				continue
			}
			visited[code] = true

			cat, ok := x.categories[code]
			if !ok {
				// Unknown codes still participate in the closure so
				// affix include/exclude lists referencing them match.
				codes = append(codes, code)
				continue
			}
			codes = append(codes, code)
			beltable = beltable || cat.Beltable
			queue = append(append([]string{}, cat.Parents...), queue...)
		}
	}

	walk(primary)
	walk(secondary)

	if quest && !visited[QuestCategoryCode] {
		codes = append(codes, QuestCategoryCode)
	}
	return codes, beltable
}
