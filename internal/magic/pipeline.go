// Package magic regenerates an item's magical attributes from its save seed
// and resolves the affix/runeword candidate pools. Generation replays the
// engine's random stream, so draw counts and draw order per property
// function code must match it exactly.
package magic

import (
	"github.com/udisondev/d2core/internal/prng"
	"github.com/udisondev/d2core/internal/tables"
)

// NumClasses is the fixed class count the skill/class property functions
// pack their table index against.
const NumClasses = 7

// Property function codes from the property table. Grouped by draw
// behavior: passthrough functions consume no draws, roll functions one,
// charge functions two, reuse functions replay the previous roll.
type PropFunc int32

const (
	PropFuncRoll        PropFunc = 1  // draw % (max-min) + min
	PropFuncRollPct     PropFunc = 2  // same draw, percentage stat
	PropFuncReuse       PropFunc = 3  // previous draw, no new draw
	PropFuncParam       PropFunc = 4  // parameter passthrough, no draw
	PropFuncMinDamage   PropFunc = 5  // one draw
	PropFuncMaxDamage   PropFunc = 6  // one draw
	PropFuncDamagePct   PropFunc = 7  // one draw
	PropFuncSkillTab    PropFunc = 10 // packed class/tab index + one draw
	PropFuncProcSkill   PropFunc = 11 // parameter passthrough, no draw
	PropFuncCharges     PropFunc = 19 // two draws: level then charge count
	PropFuncIndestruct  PropFunc = 20 // constant 1, no draw
	PropFuncClassSkills PropFunc = 21 // packed class index + one draw
	PropFuncSingleSkill PropFunc = 22 // skill id param + one draw
)

// Attribute is one regenerated magical attribute. Values carries the
// resolved numeric values: one entry for plain stats, one per chain member
// for merged chained stats, packed sub-values for skill encodings.
type Attribute struct {
	StatID   int32
	Values   []int32
	Priority int32

	// Visible is false for attributes that are computed but hidden from
	// display, e.g. when their description folds into a group line.
	Visible bool

	// GameVersion tags the attribute with the version it was generated
	// for; serializers pick save-bit metadata by it.
	GameVersion tables.Version
}

// Apply regenerates the attribute list for a property list and seed. Two
// calls with identical inputs produce identical output; that determinism is
// what lets the save format store a 4-byte seed instead of rolled values.
//
// Unknown property codes, inactive properties and properties version-gated
// above gameVersion are silently skipped: data-driven filtering, not errors.
// maxRollOnly substitutes every range roll with its maximum; reference
// displays use it to show best-possible values.
func Apply(x *tables.Index, props []tables.Modifier, seed uint32, itemLevel int32, quality prng.Quality, gameVersion tables.Version, maxRollOnly bool) []Attribute {
	g := &prng.Generator{}
	g.InitItemRandomization(seed, itemLevel, quality)
	return ApplyWithGenerator(x, g, props, gameVersion, maxRollOnly)
}

// ApplyWithGenerator is Apply against an already positioned generator, for
// callers replaying several property lists from one stream.
func ApplyWithGenerator(x *tables.Index, g *prng.Generator, props []tables.Modifier, gameVersion tables.Version, maxRollOnly bool) []Attribute {
	var out []Attribute
	var lastRoll int32

	for _, prop := range props {
		def, ok := x.Property(prop.Code)
		if !ok || !def.Active || def.Version > gameVersion {
			continue
		}

		for _, ps := range def.Stats {
			attr, rolled, ok := generateStat(x, g, prop, ps, lastRoll, maxRollOnly)
			if !ok {
				continue
			}
			lastRoll = rolled
			attr.GameVersion = gameVersion
			out = append(out, attr)
		}
	}

	return mergeChained(x, out)
}

// generateStat draws the values for one property stat reference. rolled is
// the primary drawn value, fed back for reuse functions.
func generateStat(x *tables.Index, g *prng.Generator, prop tables.Modifier, ps tables.PropertyStat, lastRoll int32, maxRollOnly bool) (Attribute, int32, bool) {
	stat, ok := x.StatByName(ps.Stat)
	if !ok {
		return Attribute{}, lastRoll, false
	}

	roll := func() int32 {
		if maxRollOnly {
			return prop.Max
		}
		return g.RollRange(prop.Min, prop.Max)
	}

	attr := Attribute{StatID: stat.ID, Priority: stat.Priority, Visible: visible(stat)}

	switch PropFunc(ps.Func) {
	case PropFuncRoll, PropFuncRollPct, PropFuncMinDamage, PropFuncMaxDamage, PropFuncDamagePct:
		v := roll()
		attr.Values = []int32{v}
		return attr, v, true

	case PropFuncReuse:
		attr.Values = []int32{lastRoll}
		return attr, lastRoll, true

	case PropFuncParam:
		attr.Values = []int32{prop.Param}
		return attr, lastRoll, true

	case PropFuncProcSkill:
		// Proc: skill id packed with chance; both ride the parameter.
		attr.Values = []int32{prop.Param, prop.Min, prop.Max}
		return attr, lastRoll, true

	case PropFuncSkillTab:
		// The table index packs class and tab in one value.
		v := roll()
		attr.Values = []int32{prop.Param / NumClasses, prop.Param % NumClasses, v}
		return attr, v, true

	case PropFuncCharges:
		level := roll()
		count := roll()
		attr.Values = []int32{prop.Param, level, count, count}
		return attr, count, true

	case PropFuncIndestruct:
		attr.Values = []int32{1}
		return attr, lastRoll, true

	case PropFuncClassSkills:
		v := roll()
		attr.Values = []int32{prop.Param % NumClasses, v}
		return attr, v, true

	case PropFuncSingleSkill:
		v := roll()
		attr.Values = []int32{prop.Param, v}
		return attr, v, true
	}

	// Unknown function codes are data the requested version does not
	// understand; skipped, not an error.
	return Attribute{}, lastRoll, false
}

func visible(s tables.Stat) bool {
	if !s.DescFunc.Supported() {
		return false
	}
	return s.DescFunc != 0 || s.DescPositive != ""
}
