package tables

import "log/slog"

// loadUniques ingests the unique item table.
func (x *Index) loadUniques(src Source) {
	t, ok := src.Table(TableUniques)
	if !ok {
		slog.Warn("unique item table missing", "table", TableUniques)
		return
	}

	name := ResolveColumn(t, "index", "Index", "name")
	base := ResolveColumn(t, "code", "Code")
	if !name.Found() || !base.Found() {
		slog.Warn("unique table unusable, required column missing", "table", TableUniques)
		return
	}

	version := ResolveColumn(t, "version", "Version")
	enabled := ResolveColumn(t, "enabled", "Enabled")
	level := ResolveColumn(t, "lvl", "level")
	reqLevel := ResolveColumn(t, "lvl req", "levelreq")
	mods := propColumns(t, "", 12)

	id := int32(0)
	for row := 0; row < t.Rows(); row++ {
		n := name.String(row)
		if n == "" || n == "Expansion" {
			continue
		}
		id++

		x.uniques = append(x.uniques, &UniqueItem{
			ID:       id,
			NameKey:  n,
			BaseCode: base.String(row),
			Version:  Version(version.Int32(row)),
			Level:    level.Int32(row),
			ReqLevel: reqLevel.Int32(row),
			Enabled:  !enabled.Found() || enabled.Bool(row),
			Mods:     readModifiers(mods, row),
		})
	}

	slog.Info("loaded unique items", "count", len(x.uniques))
}
