package tables

import (
	"log/slog"
	"strconv"
)

// loadSets ingests the set definition table: per-tier partial bonuses plus
// the full-set bonus list.
func (x *Index) loadSets(src Source) {
	t, ok := src.Table(TableSets)
	if !ok {
		slog.Warn("set table missing", "table", TableSets)
		return
	}

	code := ResolveColumn(t, "index", "Index", "code")
	name := ResolveColumn(t, "name", "Name")
	if !code.Found() {
		slog.Warn("set table unusable, required column missing", "table", TableSets)
		return
	}

	version := ResolveColumn(t, "version", "Version")

	// Partial bonuses come in a/b column pairs per equipped count 2-5.
	type tierCols struct {
		count int32
		mods  []modCols
	}
	var tiers []tierCols
	for count := 2; count <= 5; count++ {
		var mods []modCols
		for _, half := range []string{"a", "b"} {
			suffix := strconv.Itoa(count) + half
			mods = append(mods, modCols{
				code:  ResolveColumn(t, "PCode"+suffix, "pcode"+suffix),
				param: ResolveColumn(t, "PParam"+suffix, "pparam"+suffix),
				min:   ResolveColumn(t, "PMin"+suffix, "pmin"+suffix),
				max:   ResolveColumn(t, "PMax"+suffix, "pmax"+suffix),
			})
		}
		tiers = append(tiers, tierCols{count: int32(count), mods: mods})
	}
	var full []modCols
	for i := 1; i <= 8; i++ {
		suffix := strconv.Itoa(i)
		full = append(full, modCols{
			code:  ResolveColumn(t, "FCode"+suffix, "fcode"+suffix),
			param: ResolveColumn(t, "FParam"+suffix, "fparam"+suffix),
			min:   ResolveColumn(t, "FMin"+suffix, "fmin"+suffix),
			max:   ResolveColumn(t, "FMax"+suffix, "fmax"+suffix),
		})
	}

	for row := 0; row < t.Rows(); row++ {
		c := code.String(row)
		if c == "" {
			continue
		}

		s := &Set{
			Code:    c,
			NameKey: name.String(row),
			Version: Version(version.Int32(row)),
			Full:    readModifiers(full, row),
		}
		if s.NameKey == "" {
			s.NameKey = c
		}
		for _, tier := range tiers {
			mods := readModifiers(tier.mods, row)
			if len(mods) == 0 {
				continue
			}
			s.Partial = append(s.Partial, SetBonus{Count: tier.count, Mods: mods})
		}

		x.sets[c] = s
	}

	slog.Info("loaded sets", "count", len(x.sets))
}

// loadSetItems ingests the set item table, including the legacy fixed seeds
// pre-expansion saves regenerate set items from.
func (x *Index) loadSetItems(src Source) {
	t, ok := src.Table(TableSetItems)
	if !ok {
		slog.Warn("set item table missing", "table", TableSetItems)
		return
	}

	name := ResolveColumn(t, "index", "Index")
	set := ResolveColumn(t, "set", "Set")
	base := ResolveColumn(t, "item", "Item", "code")
	if !name.Found() || !set.Found() || !base.Found() {
		slog.Warn("set item table unusable, required column missing", "table", TableSetItems)
		return
	}

	level := ResolveColumn(t, "lvl", "level")
	reqLevel := ResolveColumn(t, "lvl req", "levelreq")
	legacySeed := ResolveColumn(t, "dwb", "Dwb", "legacyseed")
	mods := propColumns(t, "", 9)

	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" {
			continue
		}

		si := &SetItem{
			Code:       n,
			NameKey:    n,
			SetCode:    set.String(row),
			BaseCode:   base.String(row),
			Level:      level.Int32(row),
			ReqLevel:   reqLevel.Int32(row),
			LegacySeed: legacySeed.Uint32(row),
			Mods:       readModifiers(mods, row),
		}
		x.setItems[si.BaseCode] = si
		x.setMembers[si.SetCode] = append(x.setMembers[si.SetCode], si)
	}

	slog.Info("loaded set items", "count", len(x.setItems), "sets", len(x.setMembers))
}
