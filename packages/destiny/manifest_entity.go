package destiny

import "fmt"

// ManifestEntityType names a manifest table. Definition returns the table
// name the platform uses in URLs and in the world content database.
type ManifestEntityType int

const (
	// Items and inventory
	EntityArtifact ManifestEntityType = iota
	EntityBreakerType
	EntityCollectible
	EntityEquipmentSlot
	EntityInventoryBucket
	EntityInventoryItem
	EntityItemCategory
	EntityStat
	EntityStatGroup
	EntityItemTierType
	EntityMaterialRequirementSet
	EntityPowerCap
	EntityRecord
	EntityRewardSource
	EntitySandboxPerk
	EntityTalentGrid

	// Characters
	EntityClass
	EntityGender
	EntityMilestone
	EntityProgression
	EntityRace

	// Activities and the world
	EntityActivity
	EntityActivityGraph
	EntityActivityMode
	EntityActivityModifier
	EntityActivityType
	EntityDamageType
	EntityDestination
	EntityFaction
	EntityLocation
	EntityObjective
	EntityPlace
	EntityVendor
	EntityVendorGroup

	// Misc
	EntityChecklist
	EntityEnergyType
	EntityHistoricalStats
	EntityPresentationNode
	EntityLore
	EntityMetric
	EntityPlugSet
	EntityReportReasonCategory
	EntitySeason
	EntitySeasonPass
	EntitySocketCategory
	EntitySocketType
	EntityTagMetadata
	EntityTrait
	EntityTraitCategory
	EntityUnlock
)

var allManifestEntityTypes = []ManifestEntityType{
	EntityArtifact,
	EntityBreakerType,
	EntityCollectible,
	EntityEquipmentSlot,
	EntityInventoryBucket,
	EntityInventoryItem,
	EntityItemCategory,
	EntityStat,
	EntityStatGroup,
	EntityItemTierType,
	EntityMaterialRequirementSet,
	EntityPowerCap,
	EntityRecord,
	EntityRewardSource,
	EntitySandboxPerk,
	EntityTalentGrid,
	EntityClass,
	EntityGender,
	EntityMilestone,
	EntityProgression,
	EntityRace,
	EntityActivity,
	EntityActivityGraph,
	EntityActivityMode,
	EntityActivityModifier,
	EntityActivityType,
	EntityDamageType,
	EntityDestination,
	EntityFaction,
	EntityLocation,
	EntityObjective,
	EntityPlace,
	EntityVendor,
	EntityVendorGroup,
	EntityChecklist,
	EntityEnergyType,
	EntityHistoricalStats,
	EntityPresentationNode,
	EntityLore,
	EntityMetric,
	EntityPlugSet,
	EntityReportReasonCategory,
	EntitySeason,
	EntitySeasonPass,
	EntitySocketCategory,
	EntitySocketType,
	EntityTagMetadata,
	EntityTrait,
	EntityTraitCategory,
	EntityUnlock,
}

func AllManifestEntityTypes() []ManifestEntityType {
	out := make([]ManifestEntityType, len(allManifestEntityTypes))
	copy(out, allManifestEntityTypes)
	return out
}

func (t ManifestEntityType) Definition() string {
	switch t {
	case EntityArtifact:
		return "DestinyArtifactDefinition"
	case EntityBreakerType:
		return "DestinyBreakerTypeDefinition"
	case EntityCollectible:
		return "DestinyCollectibleDefinition"
	case EntityEquipmentSlot:
		return "DestinyEquipmentSlotDefinition"
	case EntityInventoryBucket:
		return "DestinyInventoryBucketDefinition"
	case EntityInventoryItem:
		return "DestinyInventoryItemDefinition"
	case EntityItemCategory:
		return "DestinyItemCategoryDefinition"
	case EntityStat:
		return "DestinyStatDefinition"
	case EntityStatGroup:
		return "DestinyStatGroupDefinition"
	case EntityItemTierType:
		return "DestinyItemTierTypeDefinition"
	case EntityMaterialRequirementSet:
		return "DestinyMaterialRequirementSetDefinition"
	case EntityPowerCap:
		return "DestinyPowerCapDefinition"
	case EntityRecord:
		return "DestinyRecordDefinition"
	case EntityRewardSource:
		return "DestinyRewardSourceDefinition"
	case EntitySandboxPerk:
		return "DestinySandboxPerkDefinition"
	case EntityTalentGrid:
		return "DestinyTalentGridDefinition"
	case EntityClass:
		return "DestinyClassDefinition"
	case EntityGender:
		return "DestinyGenderDefinition"
	case EntityMilestone:
		return "DestinyMilestoneDefinition"
	case EntityProgression:
		return "DestinyProgressionDefinition"
	case EntityRace:
		return "DestinyRaceDefinition"
	case EntityActivity:
		return "DestinyActivityDefinition"
	case EntityActivityGraph:
		return "DestinyActivityGraphDefinition"
	case EntityActivityMode:
		return "DestinyActivityModeDefinition"
	case EntityActivityModifier:
		return "DestinyActivityModifierDefinition"
	case EntityActivityType:
		return "DestinyActivityTypeDefinition"
	case EntityDamageType:
		return "DestinyDamageTypeDefinition"
	case EntityDestination:
		return "DestinyDestinationDefinition"
	case EntityFaction:
		return "DestinyFactionDefinition"
	case EntityLocation:
		return "DestinyLocationDefinition"
	case EntityObjective:
		return "DestinyObjectiveDefinition"
	case EntityPlace:
		return "DestinyPlaceDefinition"
	case EntityVendor:
		return "DestinyVendorDefinition"
	case EntityVendorGroup:
		return "DestinyVendorGroupDefinition"
	case EntityChecklist:
		return "DestinyChecklistDefinition"
	case EntityEnergyType:
		return "DestinyEnergyTypeDefinition"
	case EntityHistoricalStats:
		return "DestinyHistoricalStatsDefinition"
	case EntityPresentationNode:
		return "DestinyPresentationNodeDefinition"
	case EntityLore:
		return "DestinyLoreDefinition"
	case EntityMetric:
		return "DestinyMetricDefinition"
	case EntityPlugSet:
		return "DestinyPlugSetDefinition"
	case EntityReportReasonCategory:
		return "DestinyReportReasonCategoryDefinition"
	case EntitySeason:
		return "DestinySeasonDefinition"
	case EntitySeasonPass:
		return "DestinySeasonPassDefinition"
	case EntitySocketCategory:
		return "DestinySocketCategoryDefinition"
	case EntitySocketType:
		return "DestinySocketTypeDefinition"
	case EntityTagMetadata:
		return "TagMetadataDefinition"
	case EntityTrait:
		return "DestinyTraitDefinition"
	case EntityTraitCategory:
		return "DestinyTraitCategoryDefinition"
	case EntityUnlock:
		return "DestinyUnlockDefinition"
	}
	return ""
}

func (t ManifestEntityType) String() string {
	if def := t.Definition(); def != "" {
		return def
	}
	return fmt.Sprintf("ManifestEntityType(%d)", int(t))
}

// ParseManifestEntityType maps a definition table name back to its type.
func ParseManifestEntityType(definition string) (ManifestEntityType, error) {
	switch definition {
	case "DestinyArtifactDefinition":
		return EntityArtifact, nil
	case "DestinyBreakerTypeDefinition":
		return EntityBreakerType, nil
	case "DestinyCollectibleDefinition":
		return EntityCollectible, nil
	case "DestinyEquipmentSlotDefinition":
		return EntityEquipmentSlot, nil
	case "DestinyInventoryBucketDefinition":
		return EntityInventoryBucket, nil
	case "DestinyInventoryItemDefinition":
		return EntityInventoryItem, nil
	case "DestinyItemCategoryDefinition":
		return EntityItemCategory, nil
	case "DestinyStatDefinition":
		return EntityStat, nil
	case "DestinyStatGroupDefinition":
		return EntityStatGroup, nil
	case "DestinyItemTierTypeDefinition":
		return EntityItemTierType, nil
	case "DestinyMaterialRequirementSetDefinition":
		return EntityMaterialRequirementSet, nil
	case "DestinyPowerCapDefinition":
		return EntityPowerCap, nil
	case "DestinyRecordDefinition":
		return EntityRecord, nil
	case "DestinyRewardSourceDefinition":
		return EntityRewardSource, nil
	case "DestinySandboxPerkDefinition":
		return EntitySandboxPerk, nil
	case "DestinyTalentGridDefinition":
		return EntityTalentGrid, nil
	case "DestinyClassDefinition":
		return EntityClass, nil
	case "DestinyGenderDefinition":
		return EntityGender, nil
	case "DestinyMilestoneDefinition":
		return EntityMilestone, nil
	case "DestinyProgressionDefinition":
		return EntityProgression, nil
	case "DestinyRaceDefinition":
		return EntityRace, nil
	case "DestinyActivityDefinition":
		return EntityActivity, nil
	case "DestinyActivityGraphDefinition":
		return EntityActivityGraph, nil
	case "DestinyActivityModeDefinition":
		return EntityActivityMode, nil
	case "DestinyActivityModifierDefinition":
		return EntityActivityModifier, nil
	case "DestinyActivityTypeDefinition":
		return EntityActivityType, nil
	case "DestinyDamageTypeDefinition":
		return EntityDamageType, nil
	case "DestinyDestinationDefinition":
		return EntityDestination, nil
	case "DestinyFactionDefinition":
		return EntityFaction, nil
	case "DestinyLocationDefinition":
		return EntityLocation, nil
	case "DestinyObjectiveDefinition":
		return EntityObjective, nil
	case "DestinyPlaceDefinition":
		return EntityPlace, nil
	case "DestinyVendorDefinition":
		return EntityVendor, nil
	case "DestinyVendorGroupDefinition":
		return EntityVendorGroup, nil
	case "DestinyChecklistDefinition":
		return EntityChecklist, nil
	case "DestinyEnergyTypeDefinition":
		return EntityEnergyType, nil
	case "DestinyHistoricalStatsDefinition":
		return EntityHistoricalStats, nil
	case "DestinyPresentationNodeDefinition":
		return EntityPresentationNode, nil
	case "DestinyLoreDefinition":
		return EntityLore, nil
	case "DestinyMetricDefinition":
		return EntityMetric, nil
	case "DestinyPlugSetDefinition":
		return EntityPlugSet, nil
	case "DestinyReportReasonCategoryDefinition":
		return EntityReportReasonCategory, nil
	case "DestinySeasonDefinition":
		return EntitySeason, nil
	case "DestinySeasonPassDefinition":
		return EntitySeasonPass, nil
	case "DestinySocketCategoryDefinition":
		return EntitySocketCategory, nil
	case "DestinySocketTypeDefinition":
		return EntitySocketType, nil
	case "TagMetadataDefinition":
		return EntityTagMetadata, nil
	case "DestinyTraitDefinition":
		return EntityTrait, nil
	case "DestinyTraitCategoryDefinition":
		return EntityTraitCategory, nil
	case "DestinyUnlockDefinition":
		return EntityUnlock, nil
	}
	return 0, fmt.Errorf("unknown manifest entity type %q", definition)
}
