// Package stats derives player-level metrics from a hiscores record:
// maxed-status checks, the combat level formula and category XP totals.
package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/halwyn/runescore/internal/data"
	"github.com/halwyn/runescore/internal/model"
)

// ErrMissingSkill reports a combat level request lacking one of the seven
// required combat skills.
var ErrMissingSkill = errors.New("missing combat skill")

// IsMaxedTotal reports whether totalLevel is the maximum total level.
// ok mirrors the accessor contract: an absent total is never maxed.
func IsMaxedTotal(totalLevel int, ok bool) bool {
	return ok && totalLevel == data.MaxTotalLevel
}

// IsMaxedCombat reports whether every combat skill is at the cap.
// A missing skill counts the same as one below the cap.
func IsMaxedCombat(levels map[string]int) bool {
	for _, skill := range data.CombatSkills {
		level, ok := levels[skill]
		if !ok || level < data.MaxSkillLevel {
			slog.Debug("combat not maxed", "skill", skill, "level", level)
			return false
		}
	}
	return true
}

// CombatLevel computes the exact combat level from the seven combat
// skill levels. The intermediate floors are part of the published
// formula and must not be moved; the final result is intentionally
// left fractional.
func CombatLevel(levels map[string]int) (float64, error) {
	for _, skill := range data.CombatSkills {
		if _, ok := levels[skill]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingSkill, skill)
		}
	}

	attack := float64(levels["Attack"])
	strength := float64(levels["Strength"])
	defence := float64(levels["Defence"])
	hitpoints := float64(levels["Hitpoints"])
	ranged := float64(levels["Ranged"])
	prayer := float64(levels["Prayer"])
	magic := float64(levels["Magic"])

	base := 0.25 * (defence + hitpoints + math.Floor(prayer*0.5))
	melee := 0.325 * (attack + strength)
	rangedC := 0.325 * math.Floor(ranged*1.5)
	magicC := 0.325 * math.Floor(magic*1.5)

	return base + math.Max(melee, math.Max(rangedC, magicC)), nil
}

// PlayerCombatLevel extracts the combat skill levels from rec through
// the record accessors and delegates to CombatLevel.
func PlayerCombatLevel(rec *model.PlayerRecord) (float64, error) {
	levels := make(map[string]int, len(data.CombatSkills))
	for _, skill := range data.CombatSkills {
		level, ok := rec.SkillLevel(skill)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingSkill, skill)
		}
		levels[skill] = level
	}
	return CombatLevel(levels)
}

// PlayerMaxedTotal reports whether rec has the maximum total level.
func PlayerMaxedTotal(rec *model.PlayerRecord) bool {
	return IsMaxedTotal(rec.TotalLevel())
}

// PlayerMaxedCombat reports whether rec has every combat skill at the cap.
func PlayerMaxedCombat(rec *model.PlayerRecord) bool {
	levels := make(map[string]int, len(data.CombatSkills))
	for _, skill := range data.CombatSkills {
		if level, ok := rec.SkillLevel(skill); ok {
			levels[skill] = level
		}
	}
	return IsMaxedCombat(levels)
}

// SumXP sums the positive entries of values. Unranked skills report -1
// XP and must never drag a total down.
func SumXP(values []int) int {
	total := 0
	for _, xp := range values {
		if xp > 0 {
			total += xp
		}
	}
	return total
}

// CombatXP returns the summed XP of all combat skills in rec.
func CombatXP(rec *model.PlayerRecord) int {
	return categoryXP(rec, data.CombatSkills)
}

// NonCombatXP returns the summed XP of all non-combat skills in rec.
func NonCombatXP(rec *model.PlayerRecord) int {
	return categoryXP(rec, data.NonCombatSkills)
}

// GatheringXP returns the summed XP of the gathering skills in rec.
func GatheringXP(rec *model.PlayerRecord) int {
	return categoryXP(rec, data.GatheringSkills)
}

// ProductionXP returns the summed XP of the production skills in rec.
func ProductionXP(rec *model.PlayerRecord) int {
	return categoryXP(rec, data.ProductionSkills)
}

// UtilityXP returns the summed XP of the utility skills in rec.
func UtilityXP(rec *model.PlayerRecord) int {
	return categoryXP(rec, data.UtilitySkills)
}

// categoryXP collects the XP of each named skill present in rec and sums
// it. Skills absent from the record contribute nothing.
func categoryXP(rec *model.PlayerRecord, skills []string) int {
	values := make([]int, 0, len(skills))
	for _, skill := range skills {
		if xp, ok := rec.SkillXP(skill); ok {
			values = append(values, xp)
		}
	}
	return SumXP(values)
}
