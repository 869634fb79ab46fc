// Package locale resolves human-readable strings for table keys. The string
// tables ship one column per language; resolution walks a fixed fallback
// order so partially translated tables still produce text.
package locale

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
)

// Result is one resolved string. Gender carries the grammatical tag embedded
// in the source string ("ms", "fs", "nl", ...), empty when the string has
// none.
type Result struct {
	Text   string
	Gender string
}

// Resolver answers Resolve(key, lang) lookups with the fallback order:
// exact language match, 2-letter family match, default language, any
// available language, literal key echo.
type Resolver struct {
	// lang code → key → raw string (gender tag still embedded)
	tables      map[string]map[string]string
	bases       map[string]language.Base
	langs       []string // sorted, for the deterministic "any" step
	defaultLang string

	cache *lru.Cache[string, Result]
}

// NewResolver builds a Resolver over per-language string tables.
// defaultLang should name one of the supplied tables; an unknown default
// simply never matches and resolution falls through to the "any" step.
func NewResolver(tables map[string]map[string]string, defaultLang string) (*Resolver, error) {
	cache, err := lru.New[string, Result](4096)
	if err != nil {
		return nil, fmt.Errorf("creating locale cache: %w", err)
	}

	r := &Resolver{
		tables:      tables,
		bases:       make(map[string]language.Base, len(tables)),
		defaultLang: defaultLang,
		cache:       cache,
	}
	for lang := range tables {
		r.langs = append(r.langs, lang)
		if tag, err := parseTag(lang); err == nil {
			if base, conf := tag.Base(); conf > language.No {
				r.bases[lang] = base
			}
		}
	}
	sort.Strings(r.langs)
	return r, nil
}

// Languages returns the available language codes in sorted order.
func (r *Resolver) Languages() []string {
	return r.langs
}

// Resolve returns the string for key in the requested language, walking the
// fallback order. A key present in no table resolves to the key itself.
func (r *Resolver) Resolve(key, lang string) Result {
	cacheKey := lang + "\x00" + key
	if res, ok := r.cache.Get(cacheKey); ok {
		return res
	}

	res := r.resolve(key, lang)
	r.cache.Add(cacheKey, res)
	return res
}

func (r *Resolver) resolve(key, lang string) Result {
	// Exact language match.
	if raw, ok := r.lookup(lang, key); ok {
		return splitGender(raw)
	}

	// 2-letter language-family match.
	if tag, err := parseTag(lang); err == nil {
		if want, conf := tag.Base(); conf > language.No {
			for _, candidate := range r.langs {
				if candidate == lang {
					continue
				}
				if base, ok := r.bases[candidate]; ok && base == want {
					if raw, ok := r.lookup(candidate, key); ok {
						return splitGender(raw)
					}
				}
			}
		}
	}

	// Default language.
	if raw, ok := r.lookup(r.defaultLang, key); ok {
		return splitGender(raw)
	}

	// Any available language.
	for _, candidate := range r.langs {
		if raw, ok := r.lookup(candidate, key); ok {
			return splitGender(raw)
		}
	}

	// Literal key echo.
	return Result{Text: key}
}

// parseTag parses a table language code. The tables use compact codes
// ("enUS", "deDE") rather than BCP 47, so 4-letter codes are split before
// parsing.
func parseTag(code string) (language.Tag, error) {
	if len(code) == 4 {
		code = code[:2] + "-" + code[2:]
	}
	return language.Parse(code)
}

func (r *Resolver) lookup(lang, key string) (string, bool) {
	table, ok := r.tables[lang]
	if !ok {
		return "", false
	}
	raw, ok := table[key]
	return raw, ok
}

// splitGender strips a leading bracketed gender/plural tag ("[fs] Épée").
func splitGender(raw string) Result {
	if !strings.HasPrefix(raw, "[") {
		return Result{Text: raw}
	}
	end := strings.IndexByte(raw, ']')
	if end < 0 {
		return Result{Text: raw}
	}
	return Result{
		Text:   strings.TrimSpace(raw[end+1:]),
		Gender: raw[1:end],
	}
}
