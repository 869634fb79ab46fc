package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/testutil"
)

func TestLoadBuildsGeneration(t *testing.T) {
	t.Parallel()

	x, err := tables.New("enUS")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), x.Generation())

	require.NoError(t, x.Load(testutil.FixtureSource("a")))
	assert.Equal(t, uint64(1), x.Generation())
	assert.Equal(t, "a", x.SourceID())
}

func TestLoadSameSourceIsNoOp(t *testing.T) {
	t.Parallel()

	x, err := tables.New("enUS")
	require.NoError(t, err)
	require.NoError(t, x.Load(testutil.FixtureSource("a")))
	gen := x.Generation()

	require.NoError(t, x.Load(testutil.FixtureSource("a")))
	assert.Equal(t, gen, x.Generation(), "reloading the same source must not rebuild")
}

func TestLoadDifferentSourceRebuilds(t *testing.T) {
	t.Parallel()

	x, err := tables.New("enUS")
	require.NoError(t, err)
	require.NoError(t, x.Load(testutil.FixtureSource("a")))
	require.NoError(t, x.Load(testutil.FixtureSource("b")))

	assert.Equal(t, uint64(2), x.Generation())
	assert.Equal(t, "b", x.SourceID())

	// The rebuilt index serves the new source's data, not stale lookups.
	it, ok := x.ItemType("ssd")
	require.True(t, ok)
	assert.Equal(t, "Short Sword", it.Name)
}

func TestLoadNilSource(t *testing.T) {
	t.Parallel()

	x, err := tables.New("enUS")
	require.NoError(t, err)
	assert.Error(t, x.Load(nil))
}

func TestEmptyIndexLookupsMiss(t *testing.T) {
	t.Parallel()

	x, err := tables.New("enUS")
	require.NoError(t, err)

	_, ok := x.ItemType("ssd")
	assert.False(t, ok)
	_, ok = x.Stat(0)
	assert.False(t, ok)

	cat, ok := x.Category("swor")
	assert.False(t, ok)
	assert.Equal(t, tables.InvalidCategory, cat)

	// Even an unloaded index hands out a usable resolver.
	assert.Equal(t, "missing", x.Strings().Resolve("missing", "enUS").Text)
}
