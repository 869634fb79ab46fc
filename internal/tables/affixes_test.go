package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/testutil"
)

func TestPropertyIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	fire, ok := x.Property("dmg-fire")
	require.True(t, ok)
	assert.True(t, fire.Active)
	require.Len(t, fire.Stats, 2)
	assert.Equal(t, int32(5), fire.Stats[0].Func)
	assert.Equal(t, "firemindam", fire.Stats[0].Stat)
	assert.Equal(t, int32(6), fire.Stats[1].Func)

	inactive, ok := x.Property("inactive")
	require.True(t, ok)
	assert.False(t, inactive.Active)

	future, ok := x.Property("future")
	require.True(t, ok)
	assert.Equal(t, tables.VersionExpansion, future.Version)

	_, ok = x.Property("nope")
	assert.False(t, ok)
}

func TestAffixIngestion(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	byName := make(map[string]*tables.Affix)
	for _, a := range x.Affixes() {
		byName[a.NameKey] = a
	}

	sturdy := byName["Sturdy"]
	require.NotNil(t, sturdy)
	assert.Equal(t, tables.AffixPrefix, sturdy.Kind)
	assert.Equal(t, int32(1), sturdy.ID, "ids are positional within the table")
	assert.Equal(t, int32(1), sturdy.MinLevel)
	assert.Equal(t, int32(10), sturdy.MaxLevel)
	assert.Equal(t, []string{"armo"}, sturdy.Include)
	require.Len(t, sturdy.Mods, 1)
	assert.Equal(t, tables.Modifier{Code: "ac%", Min: 10, Max: 20}, sturdy.Mods[0])

	strong := byName["Strong"]
	require.NotNil(t, strong)
	assert.Equal(t, int32(2), strong.ID, "marker rows take no id slot")
	assert.NotContains(t, byName, "Expansion")

	brutal := byName["Brutal"]
	require.NotNil(t, brutal)
	assert.Equal(t, []string{"weap"}, brutal.Include)
	assert.Equal(t, []string{"swor"}, brutal.Exclude)

	unspawnable := byName["Unspawnable"]
	require.NotNil(t, unspawnable)
	assert.False(t, unspawnable.Spawnable)

	suffix := byName["of Strength"]
	require.NotNil(t, suffix)
	assert.Equal(t, tables.AffixSuffix, suffix.Kind)
	assert.Equal(t, []string{"armo", "weap"}, suffix.Include)

	rare := byName["Beast"]
	require.NotNil(t, rare)
	assert.Equal(t, tables.AffixRarePrefix, rare.Kind)

	assert.Equal(t, tables.AffixRareSuffix, byName["bite"].Kind)
}

func TestAffixGroupsShareID(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	var sturdy, strong *tables.Affix
	for _, a := range x.Affixes() {
		switch a.NameKey {
		case "Sturdy":
			sturdy = a
		case "Strong":
			strong = a
		}
	}
	require.NotNil(t, sturdy)
	require.NotNil(t, strong)
	assert.Equal(t, sturdy.Group, strong.Group, "same defense group excludes co-spawning")
	assert.NotEqual(t, sturdy.ID, strong.ID)
}
