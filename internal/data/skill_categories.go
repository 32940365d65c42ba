package data

// Skill category lists. Every tracked skill is either combat or
// non-combat; non-combat further splits into gathering, production and
// utility. Category XP totals iterate these in order.

// CombatSkills are the seven skills feeding the combat level formula.
var CombatSkills = []string{
	"Attack", "Strength", "Defence", "Hitpoints", "Ranged", "Prayer", "Magic",
}

// NonCombatSkills are all tracked skills outside the combat set.
var NonCombatSkills = []string{
	"Farming", "Fishing", "Hunter", "Mining", "Woodcutting", "Cooking", "Crafting",
	"Fletching", "Herblore", "Runecraft", "Smithing", "Agility", "Construction",
	"Firemaking", "Slayer", "Thieving", "Sailing",
}

// GatheringSkills collect raw resources.
var GatheringSkills = []string{
	"Farming", "Fishing", "Hunter", "Mining", "Woodcutting",
}

// ProductionSkills turn resources into goods.
var ProductionSkills = []string{
	"Cooking", "Crafting", "Fletching", "Herblore", "Runecraft", "Smithing",
}

// UtilitySkills are the remaining non-combat skills.
var UtilitySkills = []string{
	"Agility", "Construction", "Firemaking", "Slayer", "Thieving", "Sailing",
}
