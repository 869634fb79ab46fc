// Package codec implements the two item-code schemes of the save format: the
// compact bit-packed prefix code used by later formats and the legacy numeric
// table used by pre-expansion saves.
package codec

import (
	"errors"
	"fmt"
)

// ErrCorruptCode reports a bit string that matched no codebook entry within
// the maximum code depth. It indicates corrupt or unsupported save data; the
// caller must not read past it.
var ErrCorruptCode = errors.New("codec: item code bits match no codebook entry")

// MaxCodeDepth is the longest codebook entry in bits. A candidate that still
// matches nothing after this many bits is a fatal decode error.
const MaxCodeDepth = 9

// CodeChars is the number of characters packed per item code slot.
const CodeChars = 4

// The 38-symbol codebook: 26 letters, 10 digits, space and the NUL
// terminator. Codes form a prefix code; no entry is a prefix of another.
// Historical fixed table, not derivable from the character set.
var charToBits = map[byte]string{
	' ': "01",
	'r': "0000",
	'0': "0001",
	's': "00100",
	'a': "00101",
	'e': "00110",
	'm': "00111",
	'1': "10000",
	'2': "10001",
	'g': "10010",
	'h': "10011",
	'b': "101000",
	'c': "101001",
	'd': "101010",
	'f': "101011",
	'i': "101100",
	'k': "101101",
	'l': "101110",
	'n': "101111",
	'o': "110000",
	'p': "110001",
	'q': "110010",
	't': "110011",
	'u': "110100",
	'w': "110101",
	'x': "110110",
	'3': "110111",
	'4': "111000",
	'5': "111001",
	'6': "111010",
	'7': "111011",
	'8': "111100",
	'j': "1111011",
	'v': "1111100",
	'y': "1111101",
	'z': "1111110",
	'9': "1111111",
	0:   "111101000",
}

var bitsToChar = func() map[string]byte {
	m := make(map[string]byte, len(charToBits))
	for c, bits := range charToBits {
		m[bits] = c
	}
	return m
}()

// ReadBit returns bit bitOffset of buf (LSB-first within each byte).
func ReadBit(buf []byte, bitOffset int) (byte, error) {
	idx := bitOffset / 8
	if idx < 0 || idx >= len(buf) {
		return 0, fmt.Errorf("codec: bit offset %d out of range for %d bytes", bitOffset, len(buf))
	}
	return (buf[idx] >> uint(bitOffset%8)) & 1, nil
}

// WriteBit sets bit bitOffset of buf (LSB-first within each byte).
func WriteBit(buf []byte, bitOffset int, bit byte) error {
	idx := bitOffset / 8
	if idx < 0 || idx >= len(buf) {
		return fmt.Errorf("codec: bit offset %d out of range for %d bytes", bitOffset, len(buf))
	}
	if bit != 0 {
		buf[idx] |= 1 << uint(bitOffset%8)
	} else {
		buf[idx] &^= 1 << uint(bitOffset%8)
	}
	return nil
}

// DecodeChar reads one codebook symbol from buf starting at bitOffset.
// It accumulates bits one at a time until the candidate matches a codebook
// entry, and returns the symbol plus the bit offset past the consumed bits.
// Returns ErrCorruptCode when MaxCodeDepth bits match nothing.
func DecodeChar(buf []byte, bitOffset int) (byte, int, error) {
	candidate := make([]byte, 0, MaxCodeDepth)
	for len(candidate) < MaxCodeDepth {
		bit, err := ReadBit(buf, bitOffset)
		if err != nil {
			return 0, bitOffset, err
		}
		bitOffset++
		candidate = append(candidate, '0'+bit)
		if c, ok := bitsToChar[string(candidate)]; ok {
			return c, bitOffset, nil
		}
	}
	return 0, bitOffset, ErrCorruptCode
}

// DecodeCode reads a full item code (CodeChars symbols) from buf starting at
// bitOffset. NUL and space pad symbols are trimmed from the returned code.
func DecodeCode(buf []byte, bitOffset int) (string, int, error) {
	raw := make([]byte, 0, CodeChars)
	for i := 0; i < CodeChars; i++ {
		c, next, err := DecodeChar(buf, bitOffset)
		if err != nil {
			return "", next, fmt.Errorf("decoding item code char %d: %w", i, err)
		}
		bitOffset = next
		raw = append(raw, c)
	}
	return trimCode(raw), bitOffset, nil
}

// EncodeChar returns the codebook bit pattern for c, highest bit first, and
// its width in bits.
func EncodeChar(c byte) (pattern uint16, width int, err error) {
	bits, ok := charToBits[c]
	if !ok {
		return 0, 0, fmt.Errorf("codec: character %q not in codebook", c)
	}
	for i := 0; i < len(bits); i++ {
		pattern <<= 1
		if bits[i] == '1' {
			pattern |= 1
		}
	}
	return pattern, len(bits), nil
}

// EncodeCode packs an item code into a single accumulator, first character's
// bits highest, and returns the total bit count. A 3-character code fills its
// final slot with the NUL terminator.
func EncodeCode(code string) (packed uint64, bits int, err error) {
	padded, err := padCode(code)
	if err != nil {
		return 0, 0, err
	}
	for i := 0; i < CodeChars; i++ {
		pattern, width, err := EncodeChar(padded[i])
		if err != nil {
			return 0, 0, err
		}
		packed = packed<<uint(width) | uint64(pattern)
		bits += width
	}
	return packed, bits, nil
}

// WriteCode encodes code and writes it into buf at bitOffset, stream order
// (first encoded bit at the lowest offset). Returns the offset past the
// written bits.
func WriteCode(buf []byte, bitOffset int, code string) (int, error) {
	packed, bits, err := EncodeCode(code)
	if err != nil {
		return bitOffset, err
	}
	for i := 0; i < bits; i++ {
		bit := byte(packed >> uint(bits-1-i) & 1)
		if err := WriteBit(buf, bitOffset, bit); err != nil {
			return bitOffset, err
		}
		bitOffset++
	}
	return bitOffset, nil
}

func padCode(code string) ([]byte, error) {
	if len(code) < 3 || len(code) > CodeChars {
		return nil, fmt.Errorf("codec: item code %q must be 3-4 characters", code)
	}
	// A 3-char code leaves exactly one slot; it holds the NUL terminator,
	// which the zero fill already supplies.
	padded := make([]byte, CodeChars)
	copy(padded, code)
	return padded, nil
}

func trimCode(raw []byte) string {
	end := len(raw)
	for end > 0 && (raw[end-1] == 0 || raw[end-1] == ' ') {
		end--
	}
	return string(raw[:end])
}
