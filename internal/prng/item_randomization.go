package prng

// Item quality codes as stored in the save format.
type Quality int32

const (
	QualityInvalid  Quality = 0
	QualityInferior Quality = 1
	QualityNormal   Quality = 2
	QualitySuperior Quality = 3
	QualityMagic    Quality = 4
	QualitySet      Quality = 5
	QualityRare     Quality = 6
	QualityUnique   Quality = 7
	QualityCrafted  Quality = 8
)

// Pre-affix quality roll shaping. The engine performs the inferior/superior
// side roll before generating affixes for every quality, and the number of
// draws it consumes depends on the quality being produced. These are
// historical engine constants kept as literal tables; they have no derivable
// rule.
var (
	qualityBurnDraws   = [9]int{0, 6, 2, 4, 2, 2, 2, 2, 2}
	qualityRollDivisor = [9]uint32{1, 2, 2, 4, 2, 2, 2, 2, 2}
	qualityRollAdd     = [9]uint32{0, 1, 1, 3, 1, 1, 1, 1, 1}
)

// InitItemRandomization seeds the generator from the item's save seed and
// replays the engine's pre-affix quality roll. The burn happens even when the
// generated quality is neither inferior nor superior; skipping it shifts the
// stream and produces wrong affix values for every item.
func (g *Generator) InitItemRandomization(seed uint32, itemLevel int32, quality Quality) {
	g.Seed(seed)

	qi := int(quality)
	if qi < 0 || qi >= len(qualityBurnDraws) {
		qi = int(QualityNormal)
	}

	if itemLevel < 1 {
		itemLevel = 1
	}
	bound := uint32(itemLevel)/qualityRollDivisor[qi] + qualityRollAdd[qi]
	for i := 0; i < qualityBurnDraws[qi]; i++ {
		g.Roll(bound)
	}
}
