package tables

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/d2core/internal/codec"
	"github.com/udisondev/d2core/internal/desc"
	"github.com/udisondev/d2core/internal/locale"
)

// Index owns every lookup structure derived from one data source. It
// replaces the process-wide caches of older tools: all operations take the
// Index explicitly, and switching data source builds a fresh generation.
//
// The Index is read-only after Load; callers serialize reloads against
// in-flight lookups themselves.
type Index struct {
	sourceID   string
	generation uint64

	categories  map[string]*Category
	itemTypes   map[string]*ItemType
	statsByID   map[int32]*Stat
	statsByName map[string]*Stat
	chainPos    map[int32]chainLink
	properties  map[string]*Property
	affixes     []*Affix
	uniques     []*UniqueItem
	sets        map[string]*Set
	setItems    map[string]*SetItem
	setMembers  map[string][]*SetItem
	gems        map[string]*Gem
	runewords   []*Runeword
	belts       []*Belt

	legacyCodes *codec.LegacyCodebook
	renderer    *desc.Renderer
	strings     *locale.Resolver
	defaultLang string
}

// New returns an empty Index. Lookups against it miss; Load populates it.
func New(defaultLang string) (*Index, error) {
	renderer, err := desc.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}
	x := &Index{
		renderer:    renderer,
		defaultLang: defaultLang,
	}
	x.reset()
	return x, nil
}

// Generation returns the rebuild counter. It increments on every effective
// Load, so callers can detect a source switch.
func (x *Index) Generation() uint64 { return x.generation }

// SourceID returns the identity of the data source the Index was built from.
func (x *Index) SourceID() string { return x.sourceID }

// Load builds every lookup structure from src in dependency order. Loading
// the same source twice (by ID) is a no-op. Loading a different source
// clears and rebuilds everything before any dependent lookup is served.
func (x *Index) Load(src Source) error {
	if src == nil {
		return fmt.Errorf("tables: nil source")
	}
	if x.sourceID == src.ID() {
		slog.Debug("data source already loaded", "source", x.sourceID)
		return nil
	}

	x.reset()

	// Dependency order: categories first, then item types (which resolve
	// category closures and feed the legacy codebook), stats, properties,
	// and only then everything referencing them.
	x.loadCategories(src)
	x.loadItemTypes(src)
	x.loadStats(src)
	x.loadProperties(src)
	x.loadAffixes(src)
	x.loadUniques(src)
	x.loadSets(src)
	x.loadSetItems(src)
	x.loadGems(src)
	x.loadRunewords(src)
	x.loadBelts(src)
	if err := x.loadStrings(src); err != nil {
		return err
	}

	x.sourceID = src.ID()
	x.generation++
	slog.Info("data index loaded",
		"source", x.sourceID,
		"generation", x.generation,
		"categories", len(x.categories),
		"item_types", len(x.itemTypes),
		"stats", len(x.statsByID),
		"affixes", len(x.affixes),
		"uniques", len(x.uniques),
		"runewords", len(x.runewords),
	)
	return nil
}

func (x *Index) reset() {
	x.categories = make(map[string]*Category)
	x.itemTypes = make(map[string]*ItemType)
	x.statsByID = make(map[int32]*Stat)
	x.statsByName = make(map[string]*Stat)
	x.chainPos = make(map[int32]chainLink)
	x.properties = make(map[string]*Property)
	x.affixes = nil
	x.uniques = nil
	x.sets = make(map[string]*Set)
	x.setItems = make(map[string]*SetItem)
	x.setMembers = make(map[string][]*SetItem)
	x.gems = make(map[string]*Gem)
	x.runewords = nil
	x.belts = nil
	x.legacyCodes = codec.NewLegacyCodebook()
	x.strings = nil
	x.sourceID = ""
}

// Category resolves a category by code. The second return is false for
// unknown codes; the returned value is then InvalidCategory, never a nil
// reference.
func (x *Index) Category(code string) (Category, bool) {
	if c, ok := x.categories[code]; ok {
		return *c, true
	}
	return InvalidCategory, false
}

// ItemType resolves an item type by its 3-4 character code.
func (x *Index) ItemType(code string) (ItemType, bool) {
	if t, ok := x.itemTypes[code]; ok {
		return *t, true
	}
	return ItemType{}, false
}

// ItemTypes returns the number of loaded item types.
func (x *Index) ItemTypes() int { return len(x.itemTypes) }

// Stat resolves a stat by numeric id.
func (x *Index) Stat(id int32) (Stat, bool) {
	if s, ok := x.statsByID[id]; ok {
		return *s, true
	}
	return Stat{}, false
}

// StatByName resolves a stat by its table name.
func (x *Index) StatByName(name string) (Stat, bool) {
	if s, ok := x.statsByName[name]; ok {
		return *s, true
	}
	return Stat{}, false
}

// Property resolves a property definition by code.
func (x *Index) Property(code string) (Property, bool) {
	if p, ok := x.properties[code]; ok {
		return *p, true
	}
	return Property{}, false
}

// Affixes returns all loaded affixes. Callers must not mutate the slice.
func (x *Index) Affixes() []*Affix { return x.affixes }

// Uniques returns all loaded unique items.
func (x *Index) Uniques() []*UniqueItem { return x.uniques }

// Set resolves a set by code.
func (x *Index) Set(code string) (Set, bool) {
	if s, ok := x.sets[code]; ok {
		return *s, true
	}
	return Set{}, false
}

// SetItem resolves a set item by its item code.
func (x *Index) SetItem(code string) (SetItem, bool) {
	if s, ok := x.setItems[code]; ok {
		return *s, true
	}
	return SetItem{}, false
}

// SetMembers returns the items of a set in table order.
func (x *Index) SetMembers(setCode string) []*SetItem {
	return x.setMembers[setCode]
}

// Gem resolves a gem or rune by item code.
func (x *Index) Gem(code string) (Gem, bool) {
	if g, ok := x.gems[code]; ok {
		return *g, true
	}
	return Gem{}, false
}

// Runewords returns all loaded runewords.
func (x *Index) Runewords() []*Runeword { return x.runewords }

// Belts returns all loaded belt geometries.
func (x *Index) Belts() []*Belt { return x.belts }

// LegacyCodes returns the legacy numeric item-code table built during type
// ingestion.
func (x *Index) LegacyCodes() *codec.LegacyCodebook { return x.legacyCodes }

// Strings returns the localization resolver, or an empty resolver when the
// source shipped no strings table.
func (x *Index) Strings() *locale.Resolver {
	if x.strings == nil {
		empty, _ := locale.NewResolver(nil, x.defaultLang)
		x.strings = empty
	}
	return x.strings
}

// RenderStat renders the display template pair for a stat via the memoized
// template engine.
func (x *Index) RenderStat(s Stat) desc.Template {
	return x.renderer.Render(s.DescFunc, s.DescVal, s.DescPositive, s.DescNegative)
}
