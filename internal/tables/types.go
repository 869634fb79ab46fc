package tables

import "github.com/udisondev/d2core/internal/desc"

// Version gates table rows by game edition.
type Version int32

const (
	VersionClassic   Version = 0
	VersionExpansion Version = 100
)

// Kind distinguishes the three item type source tables.
type Kind int32

const (
	KindWeapon Kind = iota
	KindArmor
	KindMisc
)

// QuestCategoryCode is the literal category appended for quest items after
// the primary closure; it has no row in the category table.
const QuestCategoryCode = "ques"

// SocketTier is one entry of a category's max-socket-by-level table.
type SocketTier struct {
	MaxLevel int32 // item level threshold this tier applies up to
	Sockets  int32
}

// Category is one node of the item category graph. A category can list
// several parent codes, so the graph is not a tree.
type Category struct {
	Code        string
	Name        string
	Parents     []string
	EquipSlots  []string
	SocketTiers []SocketTier
	Beltable    bool
	BodyPart    bool // can be worn at all
}

// InvalidCategory is the defined result of a failed category lookup.
// Downstream comparisons branch on Code == "" rather than nil checks.
var InvalidCategory = Category{}

// DamageProfile carries the one-handed/two-handed/missile damage ranges of a
// weapon row. Unused ranges stay zero.
type DamageProfile struct {
	OneHandMin, OneHandMax int32
	TwoHandMin, TwoHandMax int32
	MissileMin, MissileMax int32
}

// ItemType is the resolved union of a weapon, armor or misc table row.
type ItemType struct {
	Code string
	Name string
	Kind Kind

	// Categories is the transitive closure over the category graph,
	// deduplicated, insertion order preserved. Affix filtering depends on
	// this exact order.
	Categories []string
	Beltable   bool

	StackMin, StackMax int32
	DurabilityMax      int32
	NoDurability       bool
	Damage             DamageProfile
	ReqStrength        int32
	ReqDexterity       int32
	ReqLevel           int32
	MaxSockets         int32
	EquipSlots         []string
	Quiver             string // linked quiver item code, "" when none
	Version            Version
	Level              int32 // base item level
	HasLegacyIndex     bool
	LegacyIndex        uint16
}

// HasCategory reports whether the resolved closure contains code.
func (t ItemType) HasCategory(code string) bool {
	for _, c := range t.Categories {
		if c == code {
			return true
		}
	}
	return false
}

// IsGem reports whether the type resolves into the gem category family.
func (t ItemType) IsGem() bool { return t.HasCategory("gem") }

// IsRune reports whether the type resolves into the rune category.
func (t ItemType) IsRune() bool { return t.HasCategory("rune") }

// SaveSpec is the bit-field encoding metadata of a stat for one save-format
// era.
type SaveSpec struct {
	Bits      int32 // value bit width in the save stream
	Add       int32 // bias added before encoding
	ParamBits int32 // parameter bit width, 0 when the stat has no parameter
}

// SaveFormatThreshold splits character-data format versions into the legacy
// and current save-bit eras.
const SaveFormatThreshold = 96

// Stat is one row of the stat definition table.
type Stat struct {
	ID   int32
	Name string

	// NextInChain links multi-part stats (elemental min/max/duration
	// triplets). Negative when the stat is standalone or chain tail.
	NextInChain int32

	DescFunc     desc.Func
	DescVal      int32
	DescPositive string
	DescNegative string
	DescGroup    string
	Priority     int32

	// Save encoding metadata per era: Current for format versions >=
	// SaveFormatThreshold, Legacy below it.
	Current SaveSpec
	Legacy  SaveSpec
}

// SaveSpec returns the bit-encoding metadata for a character-data format
// version.
func (s Stat) SaveSpec(formatVersion int32) SaveSpec {
	if formatVersion >= SaveFormatThreshold {
		return s.Current
	}
	return s.Legacy
}

// Chained reports whether the stat heads or continues a multi-part chain.
func (s Stat) Chained() bool { return s.NextInChain >= 0 }

// Modifier is one property reference on an affix, set, unique, gem or
// runeword: a property code plus its parameter and roll window.
type Modifier struct {
	Code  string
	Param int32
	Min   int32
	Max   int32
}

// AffixKind distinguishes the affix source tables.
type AffixKind int32

const (
	AffixPrefix AffixKind = iota
	AffixSuffix
	AffixRarePrefix
	AffixRareSuffix
)

// Affix is one magic prefix/suffix or rare affix row.
type Affix struct {
	ID      int32
	Kind    AffixKind
	NameKey string // localized index key
	Version Version

	MinLevel int32
	MaxLevel int32 // 0 = no cap
	Class    string
	Group    int32

	Mods    []Modifier
	Include []string
	Exclude []string

	Transform int32 // palette transform reference
	Spawnable bool
}

// PropertyStat is one stat reference inside a property definition.
type PropertyStat struct {
	Func int32
	Stat string
	Set  int32
	Val  int32
}

// Property is one row of the property definition table: the indirection
// between affix modifier codes and concrete stats.
type Property struct {
	Code    string
	Active  bool
	Version Version
	Stats   []PropertyStat
}

// SetBonus is one tier of a set's partial bonuses.
type SetBonus struct {
	Count int32 // equipped piece count the tier unlocks at
	Mods  []Modifier
}

// Set is one row of the sets table.
type Set struct {
	Code    string
	NameKey string
	Version Version
	Partial []SetBonus
	Full    []Modifier
}

// SetItem is one item belonging to a set.
type SetItem struct {
	Code     string
	NameKey  string
	SetCode  string
	BaseCode string
	Level    int32
	ReqLevel int32
	Mods     []Modifier

	// LegacySeed is the fixed numeric seed used only for items created
	// under pre-expansion save formats.
	LegacySeed uint32
}

// UniqueItem is one row of the unique items table.
type UniqueItem struct {
	ID       int32
	NameKey  string
	BaseCode string
	Version  Version
	Level    int32
	ReqLevel int32
	Mods     []Modifier
	Enabled  bool
}

// Runeword is one row of the runewords table.
type Runeword struct {
	Name       string
	NameKey    string
	Version    Version
	ServerOnly bool
	Runes      []string // ordered rune item codes
	Include    []string
	Exclude    []string
	Mods       []Modifier
}

// MinSockets returns the socket count the runeword requires.
func (r Runeword) MinSockets() int32 { return int32(len(r.Runes)) }

// Gem is one row of the gems/runes tables: per-slot modifier triples.
type Gem struct {
	Code       string
	NameKey    string
	Letter     string // rune letter shown in runeword recipes, "" for gems
	WeaponMods []Modifier
	HelmMods   []Modifier
	ShieldMods []Modifier
}

// Belt describes one belt row geometry: how many potion boxes the belt
// carries and their layout.
type Belt struct {
	Name    string
	Boxes   int32
	Rows    int32
	RowSize int32
}
