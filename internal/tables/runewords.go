package tables

import (
	"log/slog"
	"strconv"
)

// runewordVersionOverrides pins individual runewords to a version different
// from their table row. These are historical data-repair patches with no
// documented derivation; kept as a literal fixed table.
var runewordVersionOverrides = map[string]Version{
	"Runeword22": VersionExpansion, // Delirium
	"Runeword44": VersionExpansion, // Honor's Edge? table row says classic
	"Runeword91": VersionExpansion, // Pattern
}

// loadRunewords ingests the runeword table: the ordered rune sequence plus
// the category include/exclude lists eligibility filtering uses.
func (x *Index) loadRunewords(src Source) {
	t, ok := src.Table(TableRunewords)
	if !ok {
		slog.Warn("runeword table missing", "table", TableRunewords)
		return
	}

	name := ResolveColumn(t, "Name", "name")
	nameKey := ResolveColumn(t, "Rune Name", "RuneName", "index")
	if !name.Found() {
		slog.Warn("runeword table unusable, required column missing", "table", TableRunewords)
		return
	}

	complete := ResolveColumn(t, "complete", "Complete")
	server := ResolveColumn(t, "server", "Server")
	version := ResolveColumn(t, "version", "Version", "firstLadderSeason")

	var runes []Column
	for i := 1; i <= 6; i++ {
		runes = append(runes, ResolveColumn(t, "Rune"+strconv.Itoa(i)))
	}
	var include, exclude []Column
	for i := 1; i <= 6; i++ {
		include = append(include, ResolveColumn(t, "itype"+strconv.Itoa(i)))
	}
	for i := 1; i <= 3; i++ {
		exclude = append(exclude, ResolveColumn(t, "etype"+strconv.Itoa(i)))
	}
	var mods []modCols
	for i := 1; i <= 7; i++ {
		suffix := strconv.Itoa(i)
		mods = append(mods, modCols{
			code:  ResolveColumn(t, "T1Code"+suffix),
			param: ResolveColumn(t, "T1Param"+suffix),
			min:   ResolveColumn(t, "T1Min"+suffix),
			max:   ResolveColumn(t, "T1Max"+suffix),
		})
	}

	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" {
			continue
		}
		if complete.Found() && !complete.Bool(row) {
			// Unfinished rows shipped disabled in the data; skipped, not
			// an error.
			continue
		}

		rw := &Runeword{
			Name:       n,
			NameKey:    nameKey.String(row),
			Version:    Version(version.Int32(row)),
			ServerOnly: server.Bool(row),
			Mods:       readModifiers(mods, row),
		}
		if rw.NameKey == "" {
			rw.NameKey = n
		}
		if v, ok := runewordVersionOverrides[n]; ok {
			rw.Version = v
		}
		for _, col := range runes {
			if r := col.String(row); r != "" {
				rw.Runes = append(rw.Runes, r)
			}
		}
		for _, col := range include {
			if v := col.String(row); v != "" {
				rw.Include = append(rw.Include, v)
			}
		}
		for _, col := range exclude {
			if v := col.String(row); v != "" {
				rw.Exclude = append(rw.Exclude, v)
			}
		}

		x.runewords = append(x.runewords, rw)
	}

	slog.Info("loaded runewords", "count", len(x.runewords))
}
