package magic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/magic"
	"github.com/udisondev/d2core/internal/prng"
	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/testutil"
)

func TestApplyIsDeterministic(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{
		{Code: "str", Min: 1, Max: 5},
		{Code: "dmg-fire", Min: 1, Max: 4},
		{Code: "skilltab", Param: 16, Min: 1, Max: 2},
	}

	first := magic.Apply(x, props, 0x12345678, 20, prng.QualityMagic, tables.VersionExpansion, false)
	second := magic.Apply(x, props, 0x12345678, 20, prng.QualityMagic, tables.VersionExpansion, false)
	assert.Equal(t, first, second, "same seed and inputs must replay identically")

	other := magic.Apply(x, props, 0x12345679, 20, prng.QualityMagic, tables.VersionExpansion, false)
	assert.NotEqual(t, first, other, "a different seed diverges somewhere in the list")
}

func TestApplyRollsStayInWindow(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{{Code: "str", Min: 2, Max: 5}}
	for seed := uint32(0); seed < 64; seed++ {
		attrs := magic.Apply(x, props, seed, 10, prng.QualityMagic, tables.VersionClassic, false)
		require.Len(t, attrs, 1)
		require.Len(t, attrs[0].Values, 1)
		v := attrs[0].Values[0]
		assert.GreaterOrEqual(t, v, int32(2), "seed %d", seed)
		assert.Less(t, v, int32(5), "seed %d", seed)
	}
}

func TestApplyMaxRollOnly(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{
		{Code: "str", Min: 1, Max: 5},
		{Code: "dmg-fire", Min: 2, Max: 6},
	}
	attrs := magic.Apply(x, props, 99, 10, prng.QualityMagic, tables.VersionClassic, true)
	require.Len(t, attrs, 2)

	assert.Equal(t, int32(0), attrs[0].StatID)
	assert.Equal(t, []int32{5}, attrs[0].Values)

	// Fire min/max merge into one chained attribute; both sub-values sit at
	// the shared maximum.
	assert.Equal(t, int32(48), attrs[1].StatID)
	assert.Equal(t, []int32{6, 6}, attrs[1].Values)
}

func TestApplySkipsUnusableProperties(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{
		{Code: "no-such-property", Min: 1, Max: 2},
		{Code: "inactive", Min: 1, Max: 2},
		{Code: "future", Min: 1, Max: 2}, // expansion-gated, requesting classic
	}
	attrs := magic.Apply(x, props, 7, 10, prng.QualityMagic, tables.VersionClassic, false)
	assert.Empty(t, attrs)
}

func TestApplyParamAndConstantFunctions(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	attrs := magic.Apply(x, []tables.Modifier{{Code: "indestruct"}}, 1, 10, prng.QualityUnique, tables.VersionClassic, false)
	require.Len(t, attrs, 1)
	assert.Equal(t, int32(152), attrs[0].StatID)
	assert.Equal(t, []int32{1}, attrs[0].Values)

	attrs = magic.Apply(x, []tables.Modifier{{Code: "hit-skill", Param: 47, Min: 5, Max: 20}}, 1, 10, prng.QualityUnique, tables.VersionClassic, false)
	require.Len(t, attrs, 1)
	assert.Equal(t, int32(195), attrs[0].StatID)
	assert.Equal(t, []int32{47, 5, 20}, attrs[0].Values)
}

func TestApplyReuseRepeatsPreviousRoll(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{{Code: "str-dex-link", Min: 1, Max: 20}}
	for seed := uint32(0); seed < 16; seed++ {
		attrs := magic.Apply(x, props, seed, 10, prng.QualityMagic, tables.VersionClassic, false)
		require.Len(t, attrs, 2)
		assert.Equal(t, int32(0), attrs[0].StatID)
		assert.Equal(t, int32(2), attrs[1].StatID)
		assert.Equal(t, attrs[0].Values, attrs[1].Values, "seed %d: reuse takes the prior draw", seed)
	}
}

func TestApplySkillEncodings(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	// Tab 16 packs as class 2, tab 2 under the fixed 7-class layout.
	attrs := magic.Apply(x, []tables.Modifier{{Code: "skilltab", Param: 16, Min: 1, Max: 3}}, 3, 10, prng.QualityMagic, tables.VersionClassic, false)
	require.Len(t, attrs, 1)
	require.Len(t, attrs[0].Values, 3)
	assert.Equal(t, int32(2), attrs[0].Values[0])
	assert.Equal(t, int32(2), attrs[0].Values[1])
	assert.GreaterOrEqual(t, attrs[0].Values[2], int32(1))

	attrs = magic.Apply(x, []tables.Modifier{{Code: "class-skills", Param: 9, Min: 1, Max: 2}}, 3, 10, prng.QualityMagic, tables.VersionClassic, false)
	require.Len(t, attrs, 1)
	require.Len(t, attrs[0].Values, 2)
	assert.Equal(t, int32(2), attrs[0].Values[0])

	attrs = magic.Apply(x, []tables.Modifier{{Code: "oskill", Param: 34, Min: 1, Max: 3}}, 3, 10, prng.QualityMagic, tables.VersionExpansion, false)
	require.Len(t, attrs, 1)
	require.Len(t, attrs[0].Values, 2)
	assert.Equal(t, int32(34), attrs[0].Values[0])
}

func TestApplyCharges(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	attrs := magic.Apply(x, []tables.Modifier{{Code: "charged", Param: 54, Min: 2, Max: 5}}, 11, 10, prng.QualityUnique, tables.VersionExpansion, false)
	require.Len(t, attrs, 1)
	require.Len(t, attrs[0].Values, 4)

	assert.Equal(t, int32(54), attrs[0].Values[0])
	for _, v := range attrs[0].Values[1:] {
		assert.GreaterOrEqual(t, v, int32(2))
		assert.Less(t, v, int32(5))
	}
	assert.Equal(t, attrs[0].Values[2], attrs[0].Values[3], "current charges start at the maximum")
}

func TestApplyQualityChangesBurnedDraws(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	props := []tables.Modifier{{Code: "str", Min: 1, Max: 100}}
	unique := magic.Apply(x, props, 0xCAFE, 60, prng.QualityUnique, tables.VersionClassic, false)
	superior := magic.Apply(x, props, 0xCAFE, 60, prng.QualitySuperior, tables.VersionClassic, false)
	require.Len(t, unique, 1)
	require.Len(t, superior, 1)
	assert.NotEqual(t, unique[0].Values, superior[0].Values,
		"quality-dependent seed burn positions the stream differently")
}
