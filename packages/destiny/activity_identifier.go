package destiny

// ActivityIdentifier names a well known activity. The table is partial; use
// the manifest for anything missing.
type ActivityIdentifier struct {
	Name   string
	Mode   ActivityMode
	Hashes []uint32
}

var activityIdentifiers = []ActivityIdentifier{
	// Strikes
	{Name: "ArmsDealer", Mode: ActivityModeStrike, Hashes: []uint32{442671778, 2080275457, 2378719026, 2724706103, 2378719025, 770196931, 3240321863, 1258914202, 1679518121}},
	{Name: "LakeOfShadows", Mode: ActivityModeStrike, Hashes: []uint32{2318521576, 3711627564, 3725993747, 2630091891, 4134816102}},
	{Name: "TheDisgraced", Mode: ActivityModeStrike, Hashes: []uint32{1684420962, 174131855}},
	{Name: "FallenSaber", Mode: ActivityModeStrike, Hashes: []uint32{3597990372, 3777220691}},
	{Name: "DevilsLair", Mode: ActivityModeStrike, Hashes: []uint32{969982762}},
	{Name: "SavathunsSong", Mode: ActivityModeStrike, Hashes: []uint32{2359594803, 1101792305, 3191123858, 649648599, 1542611209}},
	{Name: "InvertedSpire", Mode: ActivityModeStrike, Hashes: []uint32{3704910925, 1563393783, 286562305, 1107473294, 1743518003, 338662534, 2753180142, 1743518000, 467266668}},
	{Name: "ExodusCrash", Mode: ActivityModeStrike, Hashes: []uint32{2459768558, 1549614516, 4260306233, 1930116823, 2479262829, 1930116820, 2971335647}},
	{Name: "InsightTerminus", Mode: ActivityModeStrike, Hashes: []uint32{3751421841, 291911094, 3735153516, 3735153519}},
	{Name: "ProvingGround", Mode: ActivityModeStrike, Hashes: []uint32{546528643, 1754609040}},
	{Name: "ThePyramidion", Mode: ActivityModeStrike, Hashes: []uint32{1035135049, 1603374112, 1332567112, 2704613535, 1332567115, 981383202, 2799837309, 4261351281}},
	{Name: "FesteringCore", Mode: ActivityModeStrike, Hashes: []uint32{1035850837, 3596828104}},
	{Name: "TreeOfProbabilities", Mode: ActivityModeStrike, Hashes: []uint32{2678510381, 1263901594, 561345572, 561345575, 840678113, 4085493024, 2684121894}},
	{Name: "AGardenWorld", Mode: ActivityModeStrike, Hashes: []uint32{656703508, 3676029623, 2230236215, 2230236212, 689927878, 117447065, 2579344189, 743963294}},
	{Name: "StrangeTerrain", Mode: ActivityModeStrike, Hashes: []uint32{2992505404, 861639649, 3801775390, 2248296964, 861639650}},
	{Name: "WillOfTheThousands", Mode: ActivityModeStrike, Hashes: []uint32{1198216109, 3944547192, 3510043585, 1317492847, 1891220709, 3944547195}},
	{Name: "WardenOfNothing", Mode: ActivityModeStrike, Hashes: []uint32{1360385764, 1360385767, 1134446996, 1493405720}},
	{Name: "TheHollowedLair", Mode: ActivityModeStrike, Hashes: []uint32{663301842, 1475539136, 1475539139, 955874134}},
	{Name: "Broodhold", Mode: ActivityModeStrike, Hashes: []uint32{1666283939, 3813623455}},
	{Name: "TheCorrupted", Mode: ActivityModeStrike, Hashes: []uint32{3374205762, 723056533, 224295651}},
	{Name: "TheScarletKeep", Mode: ActivityModeStrike, Hashes: []uint32{1775791936, 3879143309, 3643233460, 2047723007, 346345236}},
	{Name: "TheGlassway", Mode: ActivityModeStrike, Hashes: []uint32{2226120409, 3965479856, 3329390423}},
	{Name: "QuestExodusCrash", Mode: ActivityModeStrike, Hashes: []uint32{940394831}},
	// Nightfalls
	{Name: "ArmsDealerNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3145298904}},
	{Name: "ArmsDealerNightfallNormal", Mode: ActivityModeScoredNightfall, Hashes: []uint32{145302664}},
	{Name: "QuestArmsDealerNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1207505828}},
	{Name: "ArmsDealerNightfallPrestige", Mode: ActivityModeRaid, Hashes: []uint32{601540706}},
	{Name: "LakeOfShadowsNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3372160277}},
	{Name: "SavathunsSongNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1975064760}},
	{Name: "SavathunsSongNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{585071442}},
	{Name: "ExodusCrashNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1282886582}},
	{Name: "TheInvertedSpireNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3368226533, 4259769141}},
	{Name: "TheInvertedSpireNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3050465729}},
	{Name: "TheInsightTerminusNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1034003646}},
	{Name: "ThePyramidionNightfallNormal", Mode: ActivityModeScoredNightfall, Hashes: []uint32{926940962, 3289589202}},
	{Name: "ThePyramidionNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1129066976}},
	{Name: "TreeOfProbabilitiesNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2046332536, 3718330161}},
	{Name: "TreeOfProbabilitiesNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2416546450}},
	{Name: "AGardenWorldNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{936308438}},
	{Name: "AGardenWorldNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2688061647}},
	{Name: "StrangeTerrainNightfallNormal", Mode: ActivityModeScoredNightfall, Hashes: []uint32{522318687}},
	{Name: "StrangeTerrainNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1794007817}},
	{Name: "WillOfTheThousandsNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{272852450}},
	{Name: "WillOfTheThousandsNightfallPrestige", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2383858990}},
	{Name: "TheCorruptedNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3034843176}},
	// Post-Shadowkeep
	{Name: "ArmsDealerNightfallAdept", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1753547897}},
	{Name: "ArmsDealerNightfallHero", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1753547898}},
	{Name: "TheDisgracedNightfallHero", Mode: ActivityModeScoredHeroicNightfall, Hashes: []uint32{2136458567}},
	{Name: "TheDisgracedNightfallLegend", Mode: ActivityModeScoredHeroicNightfall, Hashes: []uint32{2136458566}},
	{Name: "TheDisgracedNightfallMaster", Mode: ActivityModeScoredHeroicNightfall, Hashes: []uint32{2136458561}},
	{Name: "TheDisgracedNightfallGrandmaster", Mode: ActivityModeScoredHeroicNightfall, Hashes: []uint32{2136458560}},
	{Name: "DevilsLairNightfallAdept", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1203950596}},
	{Name: "DevilsLairNightfallHero", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1203950599}},
	{Name: "SavathunsSongNightfallAdept", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3849697856}},
	{Name: "TheInvertedSpireNightfallLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2599001913, 1801803625}},
	{Name: "TheInvertedSpireNightfallGrandmaster", Mode: ActivityModeScoredNightfall, Hashes: []uint32{2599001919}},
	{Name: "ExodusCrashNightfallLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3233498448}},
	{Name: "WardenOfNothingNightfall", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3108813009}},
	{Name: "TheHollowedLairNightfall", Mode: ActivityModeNightfall, Hashes: []uint32{3701132453}},
	{Name: "TheBroodholdNightfallHero", Mode: ActivityModeScoredNightfall, Hashes: []uint32{265186830}},
	{Name: "TheScarletKeepNightfallHero", Mode: ActivityModeScoredNightfall, Hashes: []uint32{887176543}},
	{Name: "TheScarletKeepNightfallLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1495545954}},
	{Name: "TheGlasswayNightfallHero", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3812135452}},
	{Name: "TheGlasswayNightfallLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3812135453}},
	{Name: "TheGlasswayNightfallMaster", Mode: ActivityModeScoredNightfall, Hashes: []uint32{3812135450}},
	{Name: "TheLightbladeNightfallLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1964120203}},
	// Lost Sectors
	{Name: "ScavengersDenLostSectorLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1905792149}},
	{Name: "BunkerE15LostSectorLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{1648125541}},
	{Name: "ConcealedVoidLostSectorLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{912873277}},
	{Name: "K1LogisticsLostSectorLegend", Mode: ActivityModeScoredNightfall, Hashes: []uint32{567131512}},
	// Raids
	{Name: "Leviathan", Mode: ActivityModeRaid, Hashes: []uint32{2693136600, 2693136602, 2693136605, 2693136604, 2693136603, 2693136601}},
	{Name: "LeviathanPrestige", Mode: ActivityModeRaid, Hashes: []uint32{1685065161, 3446541099, 2449714930, 3879860661, 417231112, 757116822}},
	{Name: "EaterOfWorlds", Mode: ActivityModeRaid, Hashes: []uint32{3089205900}},
	{Name: "EaterOfWorldsPrestige", Mode: ActivityModeRaid, Hashes: []uint32{809170886}},
	{Name: "SpireOfStars", Mode: ActivityModeRaid, Hashes: []uint32{119944200}},
	{Name: "SpireOfStarsPrestige", Mode: ActivityModeRaid, Hashes: []uint32{3213556450}},
	{Name: "LastWish", Mode: ActivityModeRaid, Hashes: []uint32{2122313384}},
	{Name: "ScourgeOfThePast", Mode: ActivityModeRaid, Hashes: []uint32{548750096}},
	{Name: "CrownOfSorrow", Mode: ActivityModeRaid, Hashes: []uint32{3333172150}},
	{Name: "GardenOfSalvation", Mode: ActivityModeRaid, Hashes: []uint32{3458480158, 2659723068}},
	{Name: "DeepStoneCrypt", Mode: ActivityModeRaid, Hashes: []uint32{910380154}},
	{Name: "VaultOfGlass", Mode: ActivityModeRaid, Hashes: []uint32{3881495763}},
	{Name: "VaultOfGlassMaster", Mode: ActivityModeRaid, Hashes: []uint32{1681562271}},
	{Name: "VowOfTheDisciple", Mode: ActivityModeRaid, Hashes: []uint32{1441982566}},
}

var identifiersByHash = func() map[uint32]ActivityIdentifier {
	m := make(map[uint32]ActivityIdentifier)
	for _, ai := range activityIdentifiers {
		for _, h := range ai.Hashes {
			m[h] = ai
		}
	}
	return m
}()

// ActivityIdentifierFromHash looks up a director activity hash.
func ActivityIdentifierFromHash(hash uint32) (ActivityIdentifier, bool) {
	ai, ok := identifiersByHash[hash]
	return ai, ok
}

// ActivityIdentifierByName finds an entry by its exact name.
func ActivityIdentifierByName(name string) (ActivityIdentifier, bool) {
	for _, ai := range activityIdentifiers {
		if ai.Name == name {
			return ai, true
		}
	}
	return ActivityIdentifier{}, false
}

func AllActivityIdentifiers() []ActivityIdentifier {
	out := make([]ActivityIdentifier, len(activityIdentifiers))
	copy(out, activityIdentifiers)
	return out
}
