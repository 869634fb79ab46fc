// Package prng reproduces the game engine's multiply-with-carry random
// stream. Item property rolls are replayed from a 32-bit seed stored in the
// save file, so every draw here must be bit-for-bit identical to the engine.
package prng

// Multiplier of the engine's multiply-with-carry step. Changing it
// desynchronizes every previously saved item.
const multiplier = 0x6AC690C5

// InitialCarry is the carry value the engine seeds alongside dwb/dwa.
const InitialCarry = 666

// Generator is the deterministic sequence generator. The zero value is not
// seeded; call Seed before drawing.
type Generator struct {
	seed  uint32
	carry uint32
}

// New returns a generator seeded with the given 32-bit seed and the engine's
// initial carry.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed resets the generator to the given seed and the initial carry.
func (g *Generator) Seed(seed uint32) {
	g.seed = seed
	g.carry = InitialCarry
}

// State returns the current seed and carry. Used by callers that persist the
// stream position back into the save file.
func (g *Generator) State() (seed, carry uint32) {
	return g.seed, g.carry
}

// Next advances the stream one step and returns the new seed.
// product = seed*0x6AC690C5 + carry; seed' = low 32 bits; carry' = high 32 bits.
func (g *Generator) Next() uint32 {
	product := uint64(g.seed)*multiplier + uint64(g.carry)
	g.seed = uint32(product)
	g.carry = uint32(product >> 32)
	return g.seed
}

// Roll draws one value in [0, bound). bound == 0 consumes a draw and
// returns 0, matching the engine's modulo-by-zero guard.
func (g *Generator) Roll(bound uint32) uint32 {
	v := g.Next()
	if bound == 0 {
		return 0
	}
	return v % bound
}

// RollRange draws min + (next % (max-min)), the engine's range roll.
// min >= max returns min without consuming a draw.
func (g *Generator) RollRange(min, max int32) int32 {
	if min >= max {
		return min
	}
	return min + int32(g.Roll(uint32(max-min)))
}
