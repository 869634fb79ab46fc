package testutil

import "github.com/udisondev/d2core/internal/tables"

// FixtureSource returns a small but complete definition data set covering
// every table an Index ingests. Codes and column shapes mirror the real
// data files so category, affix and generation behavior is exercised
// realistically.
func FixtureSource(id string) *MemSource {
	s := NewMemSource(id)

	s.Add(tables.TableItemTypes, NewMemTable(
		[]string{"ItemType", "Code", "Equiv1", "Equiv2", "Body", "BodyLoc1", "BodyLoc2", "Beltable",
			"MaxSockets1", "MaxSockets2", "MaxSockets3", "MaxSocketsLevelThreshold1", "MaxSocketsLevelThreshold2"},
		[]string{"Miscellaneous", "misc"},
		[]string{"Gem", "gem", "misc"},
		[]string{"Chipped Gem", "gem0", "gem"},
		[]string{"Weapon", "weap"},
		[]string{"Melee Weapon", "mele", "weap"},
		[]string{"Sword", "swor", "mele", "", "1", "rarm", "larm", "", "2", "3", "3", "25", "40"},
		[]string{"Any Armor", "armo"},
		[]string{"Body Armor", "tors", "armo", "", "1", "tors", "", "", "2", "3", "4", "25", "40"},
		[]string{"Any Shield", "shld", "armo", "", "1", "larm", "", "", "1", "2", "3", "25", "40"},
		[]string{"Helm", "helm", "armo", "", "1", "head", "", "", "1", "2", "2", "25", "40"},
		[]string{"Belt", "belt", "armo", "", "1", "belt", "", "1"},
		[]string{"Rune", "rune", "misc"},
		[]string{"Potion", "pota", "misc", "", "", "", "", "1"},
		[]string{"Self Loop", "loop", "loop"},
	))

	s.Add(tables.TableWeapons, NewMemTable(
		[]string{"name", "type", "type2", "code", "version", "mindam", "maxdam",
			"2handmindam", "2handmaxdam", "minmisdam", "maxmisdam", "reqstr", "reqdex",
			"durability", "nodurability", "level", "levelreq", "gemsockets",
			"stackable", "minstack", "maxstack", "quiver", "quest", "compactsave"},
		[]string{"Short Sword", "swor", "", "ssd", "0", "2", "7", "", "", "", "", "25", "", "24", "", "1", "", "2", "", "", "", "", "", "1"},
		[]string{"Long Sword", "swor", "", "lsd", "0", "3", "11", "", "", "", "", "55", "39", "44", "", "20", "20", "3", "", "", "", "", "", "1"},
	))

	s.Add(tables.TableArmor, NewMemTable(
		[]string{"name", "type", "type2", "code", "version", "reqstr", "durability",
			"level", "levelreq", "gemsockets", "quest", "compactsave"},
		[]string{"Cap", "helm", "", "cap", "0", "", "12", "1", "", "2", "", "1"},
		[]string{"Buckler", "shld", "", "buc", "0", "12", "12", "1", "", "1", "", "1"},
		[]string{"Sash", "belt", "", "lbl", "0", "", "12", "1", "", "", "", "1"},
		[]string{"Quilted Armor", "tors", "", "qui", "0", "12", "20", "1", "", "2", "", "1"},
	))

	s.Add(tables.TableMisc, NewMemTable(
		[]string{"name", "type", "type2", "code", "version", "level", "levelreq", "stackable", "quest", "compactsave"},
		[]string{"Chipped Amethyst", "gem0", "", "gcv", "0", "1", "", "", "", "1"},
		[]string{"El Rune", "rune", "", "r01", "100", "11", "11"},
		[]string{"Eld Rune", "rune", "", "r02", "100", "11", "11"},
		[]string{"Tir Rune", "rune", "", "r03", "100", "13", "13"},
		[]string{"Minor Healing Potion", "pota", "", "hp1", "0", "1"},
		[]string{"Horadric Cube", "misc", "", "box", "100", "1", "", "", "1"},
	))

	s.Add(tables.TableStats, NewMemTable(
		[]string{"Stat", "ID", "descpriority", "descfunc", "descval",
			"descstrpos", "descstrneg", "dgrpstrpos", "maxstat",
			"Save Bits", "Save Add", "Save Param Bits",
			"1.09-Save Bits", "1.09-Save Add", "1.09-Save Param Bits"},
		[]string{"strength", "0", "76", "1", "1", "ModStr1a", "ModStr1a", "", "", "8", "32", "0", "8", "32", "0"},
		[]string{"dexterity", "2", "75", "1", "1", "ModStr2a", "ModStr2a", "", "", "7", "32", "0", "7", "32", "0"},
		[]string{"maxhp", "7", "74", "1", "1", "ModStr1c", "ModStr1c", "", "", "9", "32", "0", "8", "32", "0"},
		[]string{"item_armor_percent", "16", "169", "2", "1", "ModStre9a", "ModStre9a", "", "", "9", "0", "0", "9", "0", "0"},
		[]string{"firemindam", "48", "102", "3", "", "strModFireDamage", "strModFireDamage", "strModFireDamageRange", "firemaxdam", "8", "0", "0", "8", "0", "0"},
		[]string{"firemaxdam", "49", "101", "3", "", "strModFireDamage", "strModFireDamage", "strModFireDamageRange", "", "9", "0", "0", "9", "0", "0"},
		[]string{"poisonmindam", "57", "95", "3", "", "strModPoisonDamage", "strModPoisonDamage", "strModPoisonDamageRange", "poisonmaxdam", "10", "0", "0", "10", "0", "0"},
		[]string{"poisonmaxdam", "58", "94", "3", "", "strModPoisonDamage", "strModPoisonDamage", "strModPoisonDamageRange", "poisonlength", "10", "0", "0", "10", "0", "0"},
		[]string{"poisonlength", "59", "93", "0", "", "", "", "", "", "9", "0", "0", "9", "0", "0"},
		[]string{"item_addclassskills", "83", "151", "13", "0", "", "", "", "", "3", "0", "3", "3", "0", "3"},
		[]string{"item_singleskill", "107", "150", "27", "0", "", "", "", "", "3", "0", "9", "3", "0", "9"},
		[]string{"item_indestructible", "152", "40", "20", "0", "ModStre9s", "ModStre9s", "", "", "1", "0", "0", "1", "0", "0"},
		[]string{"item_addskill_tab", "188", "151", "14", "0", "", "", "", "", "3", "0", "16", "3", "0", "16"},
		[]string{"item_skillonhit", "195", "120", "24", "0", "ModStre10c", "ModStre10c", "", "", "7", "0", "16", "7", "0", "16"},
		[]string{"item_charged_skill", "204", "118", "24", "0", "ModStre10d", "ModStre10d", "", "", "8", "0", "16", "8", "0", "16"},
	))

	s.Add(tables.TableProperties, NewMemTable(
		[]string{"code", "*done", "version",
			"func1", "stat1", "set1", "val1",
			"func2", "stat2", "set2", "val2",
			"func3", "stat3", "set3", "val3"},
		[]string{"str", "1", "0", "1", "strength"},
		[]string{"dex", "1", "0", "1", "dexterity"},
		[]string{"hp", "1", "0", "1", "maxhp"},
		[]string{"ac%", "1", "0", "2", "item_armor_percent"},
		[]string{"dmg-fire", "1", "0", "5", "firemindam", "", "", "6", "firemaxdam"},
		[]string{"dmg-pois", "1", "0", "5", "poisonmindam", "", "", "6", "poisonmaxdam", "", "", "4", "poisonlength"},
		[]string{"pois-len", "1", "0", "4", "poisonlength"},
		[]string{"indestruct", "1", "0", "20", "item_indestructible"},
		[]string{"hit-skill", "1", "0", "11", "item_skillonhit"},
		[]string{"str-dex-link", "1", "0", "1", "strength", "", "", "3", "dexterity"},
		[]string{"skilltab", "1", "0", "10", "item_addskill_tab"},
		[]string{"class-skills", "1", "0", "21", "item_addclassskills"},
		[]string{"oskill", "1", "100", "22", "item_singleskill"},
		[]string{"charged", "1", "100", "19", "item_charged_skill"},
		[]string{"future", "1", "100", "1", "strength"},
		[]string{"inactive", "0", "0", "1", "strength"},
	))

	affixCols := []string{"Name", "version", "spawnable", "level", "maxlevel", "classspecific", "group",
		"mod1code", "mod1param", "mod1min", "mod1max",
		"mod2code", "mod2param", "mod2min", "mod2max",
		"mod3code", "mod3param", "mod3min", "mod3max",
		"transformcolor",
		"itype1", "itype2", "itype3", "itype4", "itype5", "itype6", "itype7",
		"etype1", "etype2", "etype3", "etype4", "etype5"}

	s.Add(tables.TablePrefixes, NewMemTable(affixCols,
		[]string{"Sturdy", "0", "1", "1", "10", "", "101", "ac%", "", "10", "20", "", "", "", "", "", "", "", "", "", "armo"},
		[]string{"Expansion"},
		[]string{"Strong", "0", "1", "5", "", "", "101", "ac%", "", "21", "30", "", "", "", "", "", "", "", "", "", "armo"},
		[]string{"Sharp", "0", "1", "3", "", "", "102", "dmg-fire", "", "1", "4", "", "", "", "", "", "", "", "", "", "weap"},
		[]string{"Brutal", "0", "1", "5", "", "", "102", "dmg-fire", "", "2", "6", "", "", "", "", "", "", "", "", "", "weap", "", "", "", "", "", "", "swor"},
		[]string{"Glowing", "100", "1", "4", "", "", "103", "hp", "", "5", "10", "", "", "", "", "", "", "", "", "", "armo"},
		[]string{"Unspawnable", "0", "0", "1", "", "", "104", "str", "", "1", "2", "", "", "", "", "", "", "", "", "", "armo"},
	))

	s.Add(tables.TableSuffixes, NewMemTable(affixCols,
		[]string{"of Strength", "0", "1", "3", "", "", "201", "str", "", "1", "5", "", "", "", "", "", "", "", "", "", "armo", "weap"},
		[]string{"of Craftsmanship", "0", "1", "1", "", "", "202", "dmg-fire", "", "1", "2", "", "", "", "", "", "", "", "", "", "weap"},
		[]string{"of the Leech", "100", "1", "14", "", "", "203", "hp", "", "3", "6", "", "", "", "", "", "", "", "", "", "weap"},
	))

	s.Add(tables.TableRarePrefixes, NewMemTable(affixCols,
		[]string{"Beast", "0", "1", "1", "", "", "301", "", "", "", "", "", "", "", "", "", "", "", "", "", "weap"},
		[]string{"Stone", "0", "1", "1", "", "", "302", "", "", "", "", "", "", "", "", "", "", "", "", "", "armo"},
	))

	s.Add(tables.TableRareSuffixes, NewMemTable(affixCols,
		[]string{"bite", "0", "1", "1", "", "", "311", "", "", "", "", "", "", "", "", "", "", "", "", "", "weap"},
	))

	s.Add(tables.TableUniques, NewMemTable(
		[]string{"index", "version", "enabled", "code", "lvl", "lvl req",
			"prop1", "par1", "min1", "max1", "prop2", "par2", "min2", "max2"},
		[]string{"The Gnasher", "0", "1", "ssd", "10", "5", "str", "", "2", "4", "dmg-fire", "", "3", "6"},
		[]string{"Steelclash", "100", "1", "buc", "25", "17", "ac%", "", "40", "60"},
	))

	s.Add(tables.TableSets, NewMemTable(
		[]string{"index", "name", "version",
			"PCode2a", "PParam2a", "PMin2a", "PMax2a",
			"PCode2b", "PParam2b", "PMin2b", "PMax2b",
			"FCode1", "FParam1", "FMin1", "FMax1",
			"FCode2", "FParam2", "FMin2", "FMax2"},
		[]string{"Civerb", "Civerb's Vestments", "0",
			"str", "", "5", "5", "", "", "", "",
			"hp", "", "20", "20", "ac%", "", "25", "25"},
	))

	s.Add(tables.TableSetItems, NewMemTable(
		[]string{"index", "set", "item", "lvl", "lvl req", "dwb",
			"prop1", "par1", "min1", "max1"},
		[]string{"Civerb's Ward", "Civerb", "buc", "13", "9", "287454020", "ac%", "", "15", "15"},
		[]string{"Civerb's Icon", "Civerb", "cap", "13", "9", "305419896", "hp", "", "10", "10"},
	))

	gemCols := []string{"name", "letter", "code",
		"weaponMod1Code", "weaponMod1Param", "weaponMod1Min", "weaponMod1Max",
		"helmMod1Code", "helmMod1Param", "helmMod1Min", "helmMod1Max",
		"shieldMod1Code", "shieldMod1Param", "shieldMod1Min", "shieldMod1Max"}
	s.Add(tables.TableGems, NewMemTable(gemCols,
		[]string{"Chipped Amethyst", "", "gcv",
			"str", "", "1", "1", "str", "", "1", "1", "ac%", "", "8", "8"},
	))
	s.Add(tables.TableRunes, NewMemTable(gemCols,
		[]string{"El Rune", "El", "r01",
			"str", "", "1", "1", "ac%", "", "1", "1", "ac%", "", "1", "1"},
		[]string{"Eld Rune", "Eld", "r02",
			"dmg-fire", "", "1", "2", "str", "", "1", "1", "str", "", "1", "1"},
		[]string{"Tir Rune", "Tir", "r03",
			"hp", "", "2", "2", "hp", "", "2", "2", "hp", "", "2", "2"},
	))

	s.Add(tables.TableRunewords, NewMemTable(
		[]string{"Name", "Rune Name", "complete", "server", "version",
			"itype1", "itype2", "itype3", "itype4", "itype5", "itype6",
			"etype1", "etype2", "etype3",
			"Rune1", "Rune2", "Rune3", "Rune4", "Rune5", "Rune6",
			"T1Code1", "T1Param1", "T1Min1", "T1Max1",
			"T1Code2", "T1Param2", "T1Min2", "T1Max2"},
		[]string{"Runeword1", "Steel", "1", "0", "0",
			"mele", "", "", "", "", "", "", "", "",
			"r01", "r02", "", "", "", "",
			"str", "", "2", "2", "dmg-fire", "", "1", "3"},
		[]string{"Runeword2", "Nadir", "1", "0", "0",
			"helm", "", "", "", "", "", "", "", "",
			"r02", "r03", "", "", "", "",
			"ac%", "", "50", "50"},
		[]string{"Runeword3", "Ancient's Pledge", "1", "0", "0",
			"shld", "", "", "", "", "", "", "", "",
			"r01", "r02", "r03", "", "", "",
			"ac%", "", "50", "50"},
		[]string{"Runeword4", "Hidden Word", "1", "1", "0",
			"mele", "", "", "", "", "", "", "", "",
			"r01", "r03", "", "", "", "",
			"str", "", "5", "5"},
		[]string{"Runeword5", "Unfinished", "0", "0", "0",
			"mele", "", "", "", "", "", "", "", "",
			"r01", "", "", "", "", "",
			"str", "", "1", "1"},
		[]string{"Runeword6", "Later Word", "1", "0", "100",
			"mele", "", "", "", "", "", "", "", "",
			"r02", "r03", "", "", "", "",
			"hp", "", "9", "9"},
	))

	s.Add(tables.TableBelts, NewMemTable(
		[]string{"name", "numboxes"},
		[]string{"Sash", "8"},
		[]string{"Belt", "12"},
		[]string{"Girdle", "16"},
	))

	s.Add(tables.TableStrings, NewMemTable(
		[]string{"Key", "enUS", "deDE", "frFR"},
		[]string{"ModStr1a", "to Strength", "zu Stärke", "[fs] de force"},
		[]string{"ModStr2a", "to Dexterity"},
		[]string{"ModStr1c", "to Life"},
		[]string{"ModStre9a", "Enhanced Defense", "Verbesserte Verteidigung"},
		[]string{"strModFireDamage", "Adds %d-%d fire damage"},
		[]string{"Chipped Amethyst", "Chipped Amethyst", "Amethystsplitter"},
		[]string{"Sturdy", "Sturdy"},
		[]string{"Strong", "Strong", "Stark"},
		[]string{"of Strength", "of Strength"},
		[]string{"Steel", "Steel"},
	))

	return s
}

// LoadedIndex builds an Index over the fixture source, failing the calling
// flow on errors via panic (test helper only).
func LoadedIndex() *tables.Index {
	x, err := tables.New("enUS")
	if err != nil {
		panic(err)
	}
	if err := x.Load(FixtureSource("fixture")); err != nil {
		panic(err)
	}
	return x
}
