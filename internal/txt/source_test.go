package txt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/tables"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpenRejectsMissingDir(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestOpenRejectsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x")
	_, err := Open(filepath.Join(dir, "file.txt"))
	assert.Error(t, err)
}

func TestTableParsing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "belts.txt",
		"name\tnumboxes\trowsize\r\n"+
			"Sash\t8\t4\r\n"+
			"\r\n"+
			"Belt\t12\r\n")

	src, err := Open(dir)
	require.NoError(t, err)

	tbl, ok := src.Table(tables.TableBelts)
	require.True(t, ok)

	assert.Equal(t, 3, tbl.Columns())
	assert.Equal(t, 2, tbl.Rows(), "blank lines are skipped")
	assert.Equal(t, "numboxes", tbl.ColumnName(1))

	idx, ok := tbl.ColumnIndex("rowsize")
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	assert.Equal(t, "Sash", tbl.String(0, 0))
	assert.Equal(t, uint32(8), tbl.Uint32(1, 0))
	assert.Equal(t, uint32(4), tbl.Uint32(2, 0))
	assert.Equal(t, "", tbl.String(2, 1), "short rows are padded")
	assert.Equal(t, uint32(0), tbl.Uint32(2, 1))
}

func TestTableCellAccessIsTotal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "belts.txt", "name\tnumboxes\nSash\t8\n")

	src, err := Open(dir)
	require.NoError(t, err)
	tbl, ok := src.Table(tables.TableBelts)
	require.True(t, ok)

	assert.Equal(t, "", tbl.String(5, 0))
	assert.Equal(t, "", tbl.String(0, 5))
	assert.Equal(t, uint32(0), tbl.Uint32(-1, -1))
	assert.Equal(t, "", tbl.ColumnName(9))
}

func TestMissingTable(t *testing.T) {
	t.Parallel()

	src, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok := src.Table(tables.TableWeapons)
	assert.False(t, ok)

	// Negative results are cached too.
	_, ok = src.Table(tables.TableWeapons)
	assert.False(t, ok)
}

func TestNonNumericCells(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "belts.txt", "name\tnumboxes\nSash\tnot-a-number\n")

	src, err := Open(dir)
	require.NoError(t, err)
	tbl, ok := src.Table(tables.TableBelts)
	require.True(t, ok)

	assert.Equal(t, uint32(0), tbl.Uint32(1, 0))
}

func TestNegativeCells(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "belts.txt", "name\tnumboxes\nSash\t-5\n")

	src, err := Open(dir)
	require.NoError(t, err)
	tbl, ok := src.Table(tables.TableBelts)
	require.True(t, ok)

	// Negative values round-trip through the unsigned accessor so Int32
	// column reads recover them.
	assert.Equal(t, int32(-5), int32(tbl.Uint32(1, 0)))
}

func TestEndToEndIndexLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "itemtypes.txt", "ItemType\tCode\tEquiv1\nWeapon\tweap\t\nSword\tswor\tweap\n")
	writeFile(t, dir, "weapons.txt", "name\ttype\tcode\tmindam\tmaxdam\nShort Sword\tswor\tssd\t2\t7\n")

	src, err := Open(dir)
	require.NoError(t, err)

	x, err := tables.New("enUS")
	require.NoError(t, err)
	require.NoError(t, x.Load(src))

	it, ok := x.ItemType("ssd")
	require.True(t, ok)
	assert.Equal(t, []string{"swor", "weap"}, it.Categories)
	assert.Equal(t, int32(7), it.Damage.OneHandMax)
}
