package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/testutil"
)

func TestSetIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	set, ok := x.Set("Civerb")
	require.True(t, ok)
	assert.Equal(t, "Civerb's Vestments", set.NameKey)

	require.Len(t, set.Partial, 1)
	assert.Equal(t, int32(2), set.Partial[0].Count)
	require.Len(t, set.Partial[0].Mods, 1)
	assert.Equal(t, tables.Modifier{Code: "str", Min: 5, Max: 5}, set.Partial[0].Mods[0])

	require.Len(t, set.Full, 2)
	assert.Equal(t, "hp", set.Full[0].Code)
	assert.Equal(t, "ac%", set.Full[1].Code)
}

func TestSetItemIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	si, ok := x.SetItem("buc")
	require.True(t, ok)
	assert.Equal(t, "Civerb's Ward", si.NameKey)
	assert.Equal(t, "Civerb", si.SetCode)
	assert.Equal(t, uint32(0x11223344), si.LegacySeed)
	require.Len(t, si.Mods, 1)
	assert.Equal(t, "ac%", si.Mods[0].Code)

	members := x.SetMembers("Civerb")
	require.Len(t, members, 2)
	assert.Equal(t, "Civerb's Ward", members[0].NameKey)
	assert.Equal(t, "Civerb's Icon", members[1].NameKey)
}

func TestGemIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	gem, ok := x.Gem("gcv")
	require.True(t, ok)
	assert.Equal(t, "Chipped Amethyst", gem.NameKey)
	assert.Empty(t, gem.Letter)
	require.Len(t, gem.WeaponMods, 1)
	assert.Equal(t, "str", gem.WeaponMods[0].Code)
	require.Len(t, gem.ShieldMods, 1)
	assert.Equal(t, tables.Modifier{Code: "ac%", Min: 8, Max: 8}, gem.ShieldMods[0])

	rune2, ok := x.Gem("r02")
	require.True(t, ok)
	assert.Equal(t, "Eld", rune2.Letter)
	require.Len(t, rune2.WeaponMods, 1)
	assert.Equal(t, "dmg-fire", rune2.WeaponMods[0].Code)
}

func TestRunewordIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	byKey := make(map[string]*tables.Runeword)
	for _, rw := range x.Runewords() {
		byKey[rw.NameKey] = rw
	}

	// Six fixture rows, one flagged incomplete.
	assert.Len(t, x.Runewords(), 5)
	assert.NotContains(t, byKey, "Unfinished")

	steel := byKey["Steel"]
	require.NotNil(t, steel)
	assert.Equal(t, []string{"r01", "r02"}, steel.Runes)
	assert.Equal(t, int32(2), steel.MinSockets())
	assert.Equal(t, []string{"mele"}, steel.Include)
	assert.False(t, steel.ServerOnly)
	require.Len(t, steel.Mods, 2)
	assert.Equal(t, "str", steel.Mods[0].Code)

	assert.True(t, byKey["Hidden Word"].ServerOnly)
	assert.Equal(t, tables.VersionExpansion, byKey["Later Word"].Version)
	assert.Equal(t, int32(3), byKey["Ancient's Pledge"].MinSockets())
}

func TestBeltIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	belts := x.Belts()
	require.Len(t, belts, 3)

	sash := belts[0]
	assert.Equal(t, "Sash", sash.Name)
	assert.Equal(t, int32(8), sash.Boxes)
	assert.Equal(t, int32(4), sash.RowSize)
	assert.Equal(t, int32(2), sash.Rows)

	girdle := belts[2]
	assert.Equal(t, int32(16), girdle.Boxes)
	assert.Equal(t, int32(4), girdle.Rows)
}

func TestUniqueIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	uniques := x.Uniques()
	require.Len(t, uniques, 2)

	gnasher := uniques[0]
	assert.Equal(t, "The Gnasher", gnasher.NameKey)
	assert.Equal(t, "ssd", gnasher.BaseCode)
	assert.Equal(t, int32(1), gnasher.ID)
	assert.True(t, gnasher.Enabled)
	require.Len(t, gnasher.Mods, 2)
	assert.Equal(t, "str", gnasher.Mods[0].Code)
	assert.Equal(t, tables.Modifier{Code: "dmg-fire", Min: 3, Max: 6}, gnasher.Mods[1])

	assert.Equal(t, tables.VersionExpansion, uniques[1].Version)
}
