package tables

import "log/slog"

// loadItemTypes ingests the weapon, armor and misc tables into the unified
// item type registry, resolving category closures and building the legacy
// numeric code table as rows declare themselves part of the old numbering.
func (x *Index) loadItemTypes(src Source) {
	x.loadTypeTable(src, TableWeapons, KindWeapon)
	x.loadTypeTable(src, TableArmor, KindArmor)
	x.loadTypeTable(src, TableMisc, KindMisc)
	slog.Info("loaded item types",
		"count", len(x.itemTypes),
		"legacy_codes", x.legacyCodes.Len(),
	)
}

func (x *Index) loadTypeTable(src Source, table Name, kind Kind) {
	t, ok := src.Table(table)
	if !ok {
		slog.Warn("item type table missing", "table", table)
		return
	}

	code := ResolveColumn(t, "code", "Code")
	name := ResolveColumn(t, "name", "Name")
	typ := ResolveColumn(t, "type", "Type")
	if !code.Found() || !name.Found() || !typ.Found() {
		slog.Warn("item type table unusable, required column missing", "table", table)
		return
	}

	typ2 := ResolveColumn(t, "type2", "Type2")
	version := ResolveColumn(t, "version", "Version")
	level := ResolveColumn(t, "level", "Level")
	levelReq := ResolveColumn(t, "levelreq", "LevelReq")
	reqStr := ResolveColumn(t, "reqstr", "ReqStr")
	reqDex := ResolveColumn(t, "reqdex", "ReqDex")
	durability := ResolveColumn(t, "durability", "Durability")
	noDurability := ResolveColumn(t, "nodurability", "NoDurability")
	stackable := ResolveColumn(t, "stackable", "Stackable")
	minStack := ResolveColumn(t, "minstack", "MinStack")
	maxStack := ResolveColumn(t, "maxstack", "MaxStack")
	sockets := ResolveColumn(t, "gemsockets", "GemSockets")
	quest := ResolveColumn(t, "quest", "Quest")
	quiver := ResolveColumn(t, "quiver", "Quiver")
	legacy := ResolveColumn(t, "compactsave", "CompactSave", "oldcode")

	minDam := ResolveColumn(t, "mindam", "MinDam")
	maxDam := ResolveColumn(t, "maxdam", "MaxDam")
	twoHandMin := ResolveColumn(t, "2handmindam", "TwoHandMinDam")
	twoHandMax := ResolveColumn(t, "2handmaxdam", "TwoHandMaxDam")
	missileMin := ResolveColumn(t, "minmisdam", "MisMinDam")
	missileMax := ResolveColumn(t, "maxmisdam", "MisMaxDam")

	for row := 0; row < t.Rows(); row++ {
		c := code.String(row)
		if c == "" {
			continue
		}

		it := &ItemType{
			Code:          c,
			Name:          name.String(row),
			Kind:          kind,
			Version:       Version(version.Int32(row)),
			Level:         level.Int32(row),
			ReqLevel:      levelReq.Int32(row),
			ReqStrength:   reqStr.Int32(row),
			ReqDexterity:  reqDex.Int32(row),
			DurabilityMax: durability.Int32(row),
			NoDurability:  noDurability.Bool(row),
			MaxSockets:    sockets.Int32(row),
			Quiver:        quiver.String(row),
			Damage: DamageProfile{
				OneHandMin: minDam.Int32(row),
				OneHandMax: maxDam.Int32(row),
				TwoHandMin: twoHandMin.Int32(row),
				TwoHandMax: twoHandMax.Int32(row),
				MissileMin: missileMin.Int32(row),
				MissileMax: missileMax.Int32(row),
			},
		}

		if stackable.Bool(row) {
			it.StackMin = minStack.Int32(row)
			it.StackMax = maxStack.Int32(row)
			if it.StackMax == 0 {
				it.StackMax = 1
			}
		}

		primary := typ.String(row)
		it.Categories, it.Beltable = x.categoryClosure(primary, typ2.String(row), quest.Bool(row))

		if cat, ok := x.categories[primary]; ok {
			it.EquipSlots = cat.EquipSlots
		}

		if legacy.Found() && legacy.Bool(row) {
			it.LegacyIndex = x.legacyCodes.Add(c)
			it.HasLegacyIndex = true
		}

		x.itemTypes[c] = it
	}
}
