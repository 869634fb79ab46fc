// Package desc turns the stat tables' description-function codes into
// positional placeholder templates. Raw table strings use legacy printf-style
// markers; everything is normalized to {n} placeholders before callers
// substitute rolled values.
package desc

// Func is a stat description-function code from the stats table.
type Func int32

const (
	FuncNone           Func = 0
	FuncPlusValue      Func = 1  // +{0} text
	FuncValuePercent   Func = 2  // {0}% text
	FuncValue          Func = 3  // {0} text
	FuncPlusPercent    Func = 4  // +{0}% text
	FuncScaledPercent  Func = 5  // {0}% text, value scaled by 100/128 upstream
	FuncPlusPerTime    Func = 6  // +{0} text, per-time suffix
	FuncPercentPerTime Func = 7  // {0}% text, per-time suffix
	FuncPlusPctPerTime Func = 8  // +{0}% text, per-time suffix
	FuncValuePerTime   Func = 9  // {0} text, per-time suffix
	FuncScaledPerTime  Func = 10 // {0}% text, scaled, per-time suffix
	FuncReciprocal     Func = 11 // literal 100/value substitution in text
	FuncPlusValueAlt   Func = 12 // +{0} text
	FuncClassSkills    Func = 13 // +{0} to {1} skill levels
	FuncSkillTab       Func = 14 // +{0} to {1} ({2})
	FuncProcSkill      Func = 15 // {0}% chance to cast level {1} {2}
	FuncAuraSkill      Func = 16 // level {0} {1} aura
	FuncTimeOfDay      Func = 17 // unsupported mechanic
	FuncTimeOfDayPct   Func = 18 // unsupported mechanic
	FuncSprintf        Func = 19 // template is already the full text
	FuncNegPercent     Func = 20 // {0}% text, value negated upstream
	FuncNegValue       Func = 21 // {0} text, value negated upstream
	FuncVsMonster      Func = 22 // unsupported mechanic
	FuncVsMonsterPct   Func = 23 // unsupported mechanic
	FuncCharges        Func = 24 // level {0} {1} ({2}/{3} charges)
	FuncTimePeriod     Func = 25 // unsupported mechanic
	FuncTimePeriodPct  Func = 26 // unsupported mechanic
	FuncSingleSkill    Func = 27 // +{0} to {1} ({2} only)
	FuncOskill         Func = 28 // +{0} to {1}
)

// MaxFunc is the highest description-function code the tables may carry.
const MaxFunc = FuncOskill

// Supported reports whether the code produces a template. Codes 17, 18, 22,
// 23, 25 and 26 belong to game mechanics the save format never shipped; they
// yield empty templates and are intentionally inert, not errors.
func (f Func) Supported() bool {
	switch f {
	case FuncTimeOfDay, FuncTimeOfDayPct, FuncVsMonster, FuncVsMonsterPct,
		FuncTimePeriod, FuncTimePeriodPct:
		return false
	}
	return f >= FuncNone && f <= MaxFunc
}
