package data

// General game constants.
const (
	// MaxSkillLevel is the per-skill level cap.
	MaxSkillLevel = 99

	// MaxTotalLevel is the total level with all 24 skills at the cap.
	MaxTotalLevel = 2376

	// MaxXP is the per-skill experience cap.
	MaxXP = 200_000_000

	// MaxVirtualLevel is the highest level the XP curve defines.
	// Levels past 99 are display-only "virtual" levels.
	MaxVirtualLevel = 126
)
