package tables

import (
	"log/slog"
	"strconv"
)

// loadGems ingests the gem and rune tables: each row carries three modifier
// groups, one per socketable target slot (weapon, helm/armor, shield).
func (x *Index) loadGems(src Source) {
	x.loadGemTable(src, TableGems)
	x.loadGemTable(src, TableRunes)
	slog.Info("loaded gems and runes", "count", len(x.gems))
}

func (x *Index) loadGemTable(src Source, table Name) {
	t, ok := src.Table(table)
	if !ok {
		slog.Warn("gem table missing", "table", table)
		return
	}

	code := ResolveColumn(t, "code", "Code")
	name := ResolveColumn(t, "name", "Name")
	if !code.Found() || !name.Found() {
		slog.Warn("gem table unusable, required column missing", "table", table)
		return
	}

	letter := ResolveColumn(t, "letter", "Letter")
	weapon := gemModColumns(t, "weaponMod")
	helm := gemModColumns(t, "helmMod")
	shield := gemModColumns(t, "shieldMod")

	for row := 0; row < t.Rows(); row++ {
		c := code.String(row)
		if c == "" {
			continue
		}

		x.gems[c] = &Gem{
			Code:       c,
			NameKey:    name.String(row),
			Letter:     letter.String(row),
			WeaponMods: readModifiers(weapon, row),
			HelmMods:   readModifiers(helm, row),
			ShieldMods: readModifiers(shield, row),
		}
	}
}

// gemModColumns resolves the per-slot modifier groups of the gem tables
// (weaponMod1Code, weaponMod1Param, ...).
func gemModColumns(t Table, prefix string) []modCols {
	var out []modCols
	for i := 1; i <= 3; i++ {
		suffix := strconv.Itoa(i)
		out = append(out, modCols{
			code:  ResolveColumn(t, prefix+suffix+"Code"),
			param: ResolveColumn(t, prefix+suffix+"Param"),
			min:   ResolveColumn(t, prefix+suffix+"Min"),
			max:   ResolveColumn(t, prefix+suffix+"Max"),
		})
	}
	return out
}
