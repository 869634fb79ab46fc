// Package tables builds the typed lookup structures every other component
// resolves item semantics against: categories, item types, stats, affixes,
// sets, uniques, runewords, gems and belts. All structures hang off an Index
// built once per data source.
package tables

// Name identifies one logical definition table of a data source.
type Name string

const (
	TableItemTypes    Name = "itemtypes"
	TableWeapons      Name = "weapons"
	TableArmor        Name = "armor"
	TableMisc         Name = "misc"
	TableProperties   Name = "properties"
	TableStats        Name = "itemstatcost"
	TablePrefixes     Name = "magicprefix"
	TableSuffixes     Name = "magicsuffix"
	TableRarePrefixes Name = "rareprefix"
	TableRareSuffixes Name = "raresuffix"
	TableUniques      Name = "uniqueitems"
	TableSets         Name = "sets"
	TableSetItems     Name = "setitems"
	TableGems         Name = "gems"
	TableRunes        Name = "runes"
	TableRunewords    Name = "runewords"
	TableBelts        Name = "belts"
	TableStrings      Name = "strings"
)

// AllTables lists every table an Index may consume, in ingestion order.
var AllTables = []Name{
	TableItemTypes, TableWeapons, TableArmor, TableMisc, TableProperties,
	TableStats, TablePrefixes, TableSuffixes, TableRarePrefixes,
	TableRareSuffixes, TableUniques, TableSets, TableSetItems, TableGems,
	TableRunes, TableRunewords, TableBelts, TableStrings,
}

// Source is the tabular data boundary. The surrounding application supplies
// one Source per game data set (base game, mod, patch); the Index never
// touches files itself.
type Source interface {
	// ID identifies the data source. Loading an Index twice against the
	// same ID is a no-op.
	ID() string

	// Table returns the named table, or false when the source lacks it.
	Table(name Name) (Table, bool)
}

// Table is a read-only row/column accessor over one definition table.
// Cell accessors are total: out-of-range coordinates yield zero values.
type Table interface {
	Columns() int
	Rows() int
	ColumnIndex(name string) (int, bool)
	ColumnName(col int) string
	String(col, row int) string
	Uint16(col, row int) uint16
	Uint32(col, row int) uint32
}

// Column is a resolved column handle. A not-found handle is usable: every
// cell accessor returns the zero value, so optional columns degrade without
// branching at each call site.
type Column struct {
	table Table
	idx   int
	ok    bool
}

// ResolveColumn resolves a column by name, trying fallback names in order.
// Historical table formats renamed several columns; the first match wins.
func ResolveColumn(t Table, names ...string) Column {
	for _, name := range names {
		if idx, ok := t.ColumnIndex(name); ok {
			return Column{table: t, idx: idx, ok: true}
		}
	}
	return Column{}
}

// Found reports whether the column exists in the table.
func (c Column) Found() bool { return c.ok }

// String returns the cell string at row, or "" for a missing column.
func (c Column) String(row int) string {
	if !c.ok {
		return ""
	}
	return c.table.String(c.idx, row)
}

// Uint16 returns the cell at row as uint16, or 0 for a missing column.
func (c Column) Uint16(row int) uint16 {
	if !c.ok {
		return 0
	}
	return c.table.Uint16(c.idx, row)
}

// Uint32 returns the cell at row as uint32, or 0 for a missing column.
func (c Column) Uint32(row int) uint32 {
	if !c.ok {
		return 0
	}
	return c.table.Uint32(c.idx, row)
}

// Int32 returns the cell at row as int32, or 0 for a missing column.
func (c Column) Int32(row int) int32 {
	return int32(c.Uint32(row))
}

// Bool reports whether the cell holds a truthy flag ("1").
func (c Column) Bool(row int) bool {
	return c.Uint32(row) == 1
}
