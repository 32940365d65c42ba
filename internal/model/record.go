package model

// OverallSkill is the pseudo-skill aggregating rank, level and XP across
// all tracked skills. It is produced by the hiscores service, never
// computed locally.
const OverallSkill = "Overall"

// SkillEntry is one skill row from a hiscores record. A rank or XP of -1
// means the player is unranked in that skill — a valid domain value, not
// an error.
type SkillEntry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
}

// ActivityEntry is one activity or boss row. The same -1 unranked
// convention applies to rank and score.
type ActivityEntry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Score int    `json:"score"`
}

// PlayerRecord is a full hiscores snapshot for one player. It is built
// fresh per lookup and read-only afterwards; derived metrics never
// mutate it.
type PlayerRecord struct {
	Skills     []SkillEntry    `json:"skills"`
	Activities []ActivityEntry `json:"activities"`
}

// FindSkill returns the first skill with the given name, nil when absent.
// Matching is exact and case-sensitive; first match wins.
func (r *PlayerRecord) FindSkill(name string) *SkillEntry {
	for i := range r.Skills {
		if r.Skills[i].Name == name {
			return &r.Skills[i]
		}
	}
	return nil
}

// FindActivity returns the first activity with the given name, nil when
// absent.
func (r *PlayerRecord) FindActivity(name string) *ActivityEntry {
	for i := range r.Activities {
		if r.Activities[i].Name == name {
			return &r.Activities[i]
		}
	}
	return nil
}

// SkillLevel returns the level for the named skill, false when the skill
// is not in the record.
func (r *PlayerRecord) SkillLevel(name string) (int, bool) {
	s := r.FindSkill(name)
	if s == nil {
		return 0, false
	}
	return s.Level, true
}

// SkillXP returns the XP for the named skill (-1 when unranked), false
// when the skill is not in the record.
func (r *PlayerRecord) SkillXP(name string) (int, bool) {
	s := r.FindSkill(name)
	if s == nil {
		return 0, false
	}
	return s.XP, true
}

// SkillRank returns the rank for the named skill (-1 when unranked),
// false when the skill is not in the record.
func (r *PlayerRecord) SkillRank(name string) (int, bool) {
	s := r.FindSkill(name)
	if s == nil {
		return 0, false
	}
	return s.Rank, true
}

// ActivityScore returns the score for the named activity (-1 when
// unranked), false when the activity is not in the record.
func (r *PlayerRecord) ActivityScore(name string) (int, bool) {
	a := r.FindActivity(name)
	if a == nil {
		return 0, false
	}
	return a.Score, true
}

// ActivityRank returns the rank for the named activity (-1 when
// unranked), false when the activity is not in the record.
func (r *PlayerRecord) ActivityRank(name string) (int, bool) {
	a := r.FindActivity(name)
	if a == nil {
		return 0, false
	}
	return a.Rank, true
}

// TotalLevel returns the player's total level from the Overall
// pseudo-skill.
func (r *PlayerRecord) TotalLevel() (int, bool) {
	return r.SkillLevel(OverallSkill)
}

// OverallXP returns the player's total XP from the Overall pseudo-skill.
func (r *PlayerRecord) OverallXP() (int, bool) {
	return r.SkillXP(OverallSkill)
}

// OverallRank returns the player's overall leaderboard rank.
func (r *PlayerRecord) OverallRank() (int, bool) {
	return r.SkillRank(OverallSkill)
}
