package desc

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Template is a rendered positive/negative template pair. Unsupported
// function codes produce two empty strings.
type Template struct {
	Positive string
	Negative string
}

// Renderer memoizes rendered templates. Tooltip construction re-renders the
// same (func, descval, string) triples for every hovered item, so the cache
// hit rate is near total after warmup.
type Renderer struct {
	cache *lru.Cache[string, Template]
}

// NewRenderer returns a Renderer with a bounded template cache.
func NewRenderer() (*Renderer, error) {
	cache, err := lru.New[string, Template](1024)
	if err != nil {
		return nil, fmt.Errorf("creating template cache: %w", err)
	}
	return &Renderer{cache: cache}, nil
}

// Render returns the memoized template pair for the given description
// function, value placement and raw table strings.
func (r *Renderer) Render(fn Func, descVal int32, str1, str2 string) Template {
	key := fmt.Sprintf("%d\x00%d\x00%s\x00%s", fn, descVal, str1, str2)
	if tpl, ok := r.cache.Get(key); ok {
		return tpl
	}
	tpl := Render(fn, descVal, str1, str2)
	r.cache.Add(key, tpl)
	return tpl
}

// Render builds the positive and negative display templates for one stat.
// descVal places the value placeholder: 0 = text only, 1 = value before the
// text, 2 = value after the text. str2 is the secondary table string: the
// per-time suffix for per-time codes, or an alternate negative-form text.
func Render(fn Func, descVal int32, str1, str2 string) Template {
	if !fn.Supported() {
		return Template{}
	}

	str1 = Normalize(str1)
	str2 = Normalize(str2)

	switch fn {
	case FuncNone:
		return mirrored(str1)

	case FuncPlusValue, FuncPlusValueAlt:
		return signed("+{0}", "{0}", descVal, str1, str2)

	case FuncValuePercent, FuncScaledPercent, FuncNegPercent:
		return signed("{0}%", "{0}%", descVal, str1, str2)

	case FuncValue, FuncNegValue:
		return signed("{0}", "{0}", descVal, str1, str2)

	case FuncPlusPercent:
		return signed("+{0}%", "{0}%", descVal, str1, str2)

	case FuncPlusPerTime:
		return mirrored(perTime(compose("+{0}", descVal, str1), str2))

	case FuncPercentPerTime, FuncScaledPerTime:
		return mirrored(perTime(compose("{0}%", descVal, str1), str2))

	case FuncPlusPctPerTime:
		return mirrored(perTime(compose("+{0}%", descVal, str1), str2))

	case FuncValuePerTime:
		return mirrored(perTime(compose("{0}", descVal, str1), str2))

	case FuncReciprocal:
		return mirrored(reciprocal(str1))

	case FuncClassSkills, FuncSkillTab, FuncProcSkill, FuncAuraSkill,
		FuncSprintf, FuncCharges, FuncSingleSkill, FuncOskill:
		// The table string carries its own placeholder arrangement.
		return mirrored(str1)
	}

	return Template{}
}

// mirrored returns a pair whose negative variant equals the positive one.
func mirrored(s string) Template {
	return Template{Positive: s, Negative: s}
}

// signed composes a pair whose negative variant drops the plus marker (the
// substituted value prints its own sign) and prefers the alternate negative
// text when the tables supply one.
func signed(posMarker, negMarker string, descVal int32, str1, str2 string) Template {
	negText := str1
	if str2 != "" {
		negText = str2
	}
	return Template{
		Positive: compose(posMarker, descVal, str1),
		Negative: compose(negMarker, descVal, negText),
	}
}

func compose(marker string, descVal int32, text string) string {
	switch descVal {
	case 1:
		return marker + " " + text
	case 2:
		return text + " " + marker
	default:
		return text
	}
}

func perTime(s, suffix string) string {
	if suffix == "" {
		return s
	}
	return s + " " + suffix
}

// reciprocal handles the repair-rate text. The source tables embed the base
// period literally ("... in 100 Seconds"); the engine substitutes the
// computed 100/value quotient into that literal rather than a placeholder.
func reciprocal(s string) string {
	if strings.Contains(s, "100") {
		return strings.Replace(s, "100", "{0}", 1)
	}
	return s + " {0}"
}

// Normalize rewrites legacy printf-style markers (%d, %i, %s, %+d, %%) into
// {n} placeholders, indexed by order of appearance. Older-format tables mix
// both syntaxes in one string.
func Normalize(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	arg := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'd', 'i', 's':
			fmt.Fprintf(&b, "{%d}", arg)
			arg++
			i++
		case '+':
			if i+2 < len(s) && s[i+2] == 'd' {
				fmt.Fprintf(&b, "+{%d}", arg)
				arg++
				i += 2
			} else {
				b.WriteByte(s[i])
			}
		case '%':
			b.WriteByte('%')
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
