package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/testutil"
)

func TestStringTableResolution(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()
	strs := x.Strings()

	assert.Equal(t, []string{"deDE", "enUS", "frFR"}, strs.Languages())

	// Exact language.
	assert.Equal(t, "Verbesserte Verteidigung", strs.Resolve("ModStre9a", "deDE").Text)

	// Untranslated key falls back to the default language.
	assert.Equal(t, "to Dexterity", strs.Resolve("ModStr2a", "deDE").Text)

	// Gender tags are split off, not rendered.
	res := strs.Resolve("ModStr1a", "frFR")
	assert.Equal(t, "de force", res.Text)
	assert.Equal(t, "fs", res.Gender)

	// Missing keys echo.
	assert.Equal(t, "no-such-key", strs.Resolve("no-such-key", "enUS").Text)
}

func TestLegacyStringKeys(t *testing.T) {
	t.Parallel()

	key, ok := tables.LegacyStringKey(5016)
	require.True(t, ok)
	assert.Equal(t, "ModStre8a", key)

	key, ok = tables.LegacyStringKey(10016)
	require.True(t, ok)
	assert.Equal(t, "gemeffect1", key)

	_, ok = tables.LegacyStringKey(1)
	assert.False(t, ok)
}

func TestRenderStatTemplate(t *testing.T) {
	t.Parallel()
	x := testutil.LoadedIndex()

	str, ok := x.StatByName("strength")
	require.True(t, ok)

	tpl := x.RenderStat(str)
	assert.Contains(t, tpl.Positive, "{0}")
	assert.Contains(t, tpl.Positive, "ModStr1a")
}
