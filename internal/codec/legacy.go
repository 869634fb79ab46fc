package codec

import "fmt"

// LegacyCodebook maps the fixed integer indices of pre-expansion saves to
// item codes. Indices are assigned incrementally as type-table rows declare
// themselves part of the legacy numbering, so the table is append-only and
// its order is the ingestion order of the type tables.
type LegacyCodebook struct {
	codes   []string
	indices map[string]uint16
}

// NewLegacyCodebook returns an empty codebook.
func NewLegacyCodebook() *LegacyCodebook {
	return &LegacyCodebook{indices: make(map[string]uint16)}
}

// Add appends code to the legacy numbering and returns its index.
// Re-adding a known code returns the existing index.
func (cb *LegacyCodebook) Add(code string) uint16 {
	if idx, ok := cb.indices[code]; ok {
		return idx
	}
	idx := uint16(len(cb.codes))
	cb.codes = append(cb.codes, code)
	cb.indices[code] = idx
	return idx
}

// Code resolves a legacy numeric index to its item code.
func (cb *LegacyCodebook) Code(idx uint16) (string, bool) {
	if int(idx) >= len(cb.codes) {
		return "", false
	}
	return cb.codes[idx], true
}

// Index resolves an item code to its legacy numeric index.
func (cb *LegacyCodebook) Index(code string) (uint16, bool) {
	idx, ok := cb.indices[code]
	return idx, ok
}

// Len returns the number of registered legacy codes.
func (cb *LegacyCodebook) Len() int {
	return len(cb.codes)
}

// MustCode is Code for callers that already validated the index against the
// containing save structure.
func (cb *LegacyCodebook) MustCode(idx uint16) string {
	code, ok := cb.Code(idx)
	if !ok {
		panic(fmt.Sprintf("codec: legacy index %d out of range (%d codes)", idx, len(cb.codes)))
	}
	return code
}
