package tables

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/d2core/internal/locale"
)

// legacyStringKeys maps fixed numeric string-table indices used by
// pre-expansion save formats to their keys. Historical data-repair patches
// with no documented derivation; kept as a literal fixed table.
var legacyStringKeys = map[int32]string{
	5016:  "ModStre8a", // superior prefix
	5017:  "ModStre8b", // inferior "Crude"
	5018:  "ModStre8c", // inferior "Cracked"
	5019:  "ModStre8d", // inferior "Damaged"
	5020:  "ModStre8e", // inferior "Low Quality"
	10016: "gemeffect1",
	10017: "gemeffect2",
	10018: "gemeffect3",
}

// LegacyStringKey resolves a fixed numeric string index of the legacy save
// format to its table key.
func LegacyStringKey(index int32) (string, bool) {
	key, ok := legacyStringKeys[index]
	return key, ok
}

// loadStrings ingests the string table into the localization resolver. The
// first column holds keys; every further column is one language.
func (x *Index) loadStrings(src Source) error {
	t, ok := src.Table(TableStrings)
	if !ok {
		slog.Warn("string table missing", "table", TableStrings)
		resolver, err := locale.NewResolver(nil, x.defaultLang)
		if err != nil {
			return fmt.Errorf("building empty string resolver: %w", err)
		}
		x.strings = resolver
		return nil
	}

	key := ResolveColumn(t, "Key", "key", "index")
	if !key.Found() {
		slog.Warn("string table unusable, required column missing", "table", TableStrings)
		resolver, err := locale.NewResolver(nil, x.defaultLang)
		if err != nil {
			return fmt.Errorf("building empty string resolver: %w", err)
		}
		x.strings = resolver
		return nil
	}

	// Every non-key column is a language column named by its code.
	perLang := make(map[string]map[string]string)
	for col := 0; col < t.Columns(); col++ {
		if col == key.idx {
			continue
		}
		lang := t.ColumnName(col)
		if lang == "" {
			continue
		}
		entries := make(map[string]string, t.Rows())
		for row := 0; row < t.Rows(); row++ {
			k := key.String(row)
			if k == "" {
				continue
			}
			if v := t.String(col, row); v != "" {
				entries[k] = v
			}
		}
		perLang[lang] = entries
	}

	resolver, err := locale.NewResolver(perLang, x.defaultLang)
	if err != nil {
		return fmt.Errorf("building string resolver: %w", err)
	}
	x.strings = resolver
	slog.Info("loaded strings", "languages", len(perLang))
	return nil
}
