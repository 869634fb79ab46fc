package tables

import (
	"log/slog"
	"strconv"
)

// loadProperties ingests the property definition table: up to seven
// func/stat references per property code.
func (x *Index) loadProperties(src Source) {
	t, ok := src.Table(TableProperties)
	if !ok {
		slog.Warn("property table missing", "table", TableProperties)
		return
	}

	code := ResolveColumn(t, "code", "Code")
	if !code.Found() {
		slog.Warn("property table unusable, required column missing", "table", TableProperties)
		return
	}

	active := ResolveColumn(t, "*done", "done", "active")
	version := ResolveColumn(t, "version", "Version")

	type statCols struct {
		fn, stat, set, val Column
	}
	var cols []statCols
	for _, suffix := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		cols = append(cols, statCols{
			fn:   ResolveColumn(t, "func"+suffix),
			stat: ResolveColumn(t, "stat"+suffix),
			set:  ResolveColumn(t, "set"+suffix),
			val:  ResolveColumn(t, "val"+suffix),
		})
	}

	for row := 0; row < t.Rows(); row++ {
		c := code.String(row)
		if c == "" {
			continue
		}

		p := &Property{
			Code:    c,
			Active:  !active.Found() || active.Bool(row),
			Version: Version(version.Int32(row)),
		}
		for _, sc := range cols {
			fn := sc.fn.Int32(row)
			if fn == 0 {
				continue
			}
			p.Stats = append(p.Stats, PropertyStat{
				Func: fn,
				Stat: sc.stat.String(row),
				Set:  sc.set.Int32(row),
				Val:  sc.val.Int32(row),
			})
		}

		x.properties[c] = p
	}

	slog.Info("loaded properties", "count", len(x.properties))
}

// loadAffixes ingests the magic prefix/suffix and rare affix tables.
func (x *Index) loadAffixes(src Source) {
	x.loadAffixTable(src, TablePrefixes, AffixPrefix)
	x.loadAffixTable(src, TableSuffixes, AffixSuffix)
	x.loadAffixTable(src, TableRarePrefixes, AffixRarePrefix)
	x.loadAffixTable(src, TableRareSuffixes, AffixRareSuffix)
	slog.Info("loaded affixes", "count", len(x.affixes))
}

func (x *Index) loadAffixTable(src Source, table Name, kind AffixKind) {
	t, ok := src.Table(table)
	if !ok {
		// Rare affix tables are absent from the oldest formats.
		slog.Debug("affix table missing", "table", table)
		return
	}

	name := ResolveColumn(t, "Name", "name")
	if !name.Found() {
		slog.Warn("affix table unusable, required column missing", "table", table)
		return
	}

	version := ResolveColumn(t, "version", "Version")
	spawnable := ResolveColumn(t, "spawnable", "Spawnable")
	level := ResolveColumn(t, "level", "Level")
	maxLevel := ResolveColumn(t, "maxlevel", "MaxLevel")
	class := ResolveColumn(t, "classspecific", "class")
	group := ResolveColumn(t, "group", "Group")
	transform := ResolveColumn(t, "transformcolor", "Transform")

	mods := modifierColumns(t, "mod", 3)
	var include, exclude []Column
	for _, i := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		include = append(include, ResolveColumn(t, "itype"+i))
	}
	for _, i := range []string{"1", "2", "3", "4", "5"} {
		exclude = append(exclude, ResolveColumn(t, "etype"+i))
	}

	// Affix ids are positional within their table, matching the numeric
	// codes stored in save files.
	id := int32(0)
	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" || n == "Expansion" {
			// Marker rows separate the classic and expansion blocks; they
			// carry no affix and take no id slot.
			continue
		}
		id++

		a := &Affix{
			ID:        id,
			Kind:      kind,
			NameKey:   n,
			Version:   Version(version.Int32(row)),
			MinLevel:  level.Int32(row),
			MaxLevel:  maxLevel.Int32(row),
			Class:     class.String(row),
			Group:     group.Int32(row),
			Transform: transform.Int32(row),
			Spawnable: !spawnable.Found() || spawnable.Bool(row),
			Mods:      readModifiers(mods, row),
		}
		for _, col := range include {
			if v := col.String(row); v != "" {
				a.Include = append(a.Include, v)
			}
		}
		for _, col := range exclude {
			if v := col.String(row); v != "" {
				a.Exclude = append(a.Exclude, v)
			}
		}

		x.affixes = append(x.affixes, a)
	}
}

// modifierColumns resolves the modNcode/modNparam/modNmin/modNmax column
// groups of the affix tables.
func modifierColumns(t Table, prefix string, count int) []modCols {
	var out []modCols
	for i := 1; i <= count; i++ {
		suffix := strconv.Itoa(i)
		out = append(out, modCols{
			code:  ResolveColumn(t, prefix+suffix+"code"),
			param: ResolveColumn(t, prefix+suffix+"param"),
			min:   ResolveColumn(t, prefix+suffix+"min"),
			max:   ResolveColumn(t, prefix+suffix+"max"),
		})
	}
	return out
}

// propColumns resolves the propN/parN/minN/maxN column groups of the unique,
// set-item and gem tables.
func propColumns(t Table, prefix string, count int) []modCols {
	var out []modCols
	for i := 1; i <= count; i++ {
		suffix := strconv.Itoa(i)
		out = append(out, modCols{
			code:  ResolveColumn(t, prefix+"prop"+suffix, prefix+"Prop"+suffix),
			param: ResolveColumn(t, prefix+"par"+suffix, prefix+"Par"+suffix),
			min:   ResolveColumn(t, prefix+"min"+suffix, prefix+"Min"+suffix),
			max:   ResolveColumn(t, prefix+"max"+suffix, prefix+"Max"+suffix),
		})
	}
	return out
}

type modCols struct {
	code, param, min, max Column
}

func readModifiers(cols []modCols, row int) []Modifier {
	var out []Modifier
	for _, mc := range cols {
		code := mc.code.String(row)
		if code == "" {
			continue
		}
		out = append(out, Modifier{
			Code:  code,
			Param: mc.param.Int32(row),
			Min:   mc.min.Int32(row),
			Max:   mc.max.Int32(row),
		})
	}
	return out
}
