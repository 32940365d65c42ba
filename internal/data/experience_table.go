package data

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// ExperienceTable holds cumulative XP required to reach each level.
// Index 0 = level 1 (always 0 XP). Strictly increasing.
// The shipped resource defines levels 1-126.
type ExperienceTable []int

// DefaultXPTablePath is where the table resource lives relative to the
// working directory.
const DefaultXPTablePath = "data/xp_table.json"

var (
	xpTableOnce sync.Once
	xpTablePath = DefaultXPTablePath
	xpTable     ExperienceTable
)

// SetXPTablePath overrides the table resource location. Only effective
// before the first XPTable call.
func SetXPTablePath(path string) {
	if path != "" {
		xpTablePath = path
	}
}

// XPTable returns the process-wide experience table, loading it from the
// configured resource on first use. The table never changes after load.
func XPTable() ExperienceTable {
	xpTableOnce.Do(func() {
		xpTable = LoadExperienceTable(xpTablePath)
	})
	return xpTable
}

// LoadExperienceTable reads a JSON integer array of cumulative XP
// thresholds. A missing file, malformed content or a broken ordering
// degrades to an empty table: every conversion then falls back to its
// documented default instead of failing.
func LoadExperienceTable(path string) ExperienceTable {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Error("experience table unavailable", "path", path, "err", err)
		return nil
	}

	var table ExperienceTable
	if err := json.Unmarshal(raw, &table); err != nil {
		slog.Error("experience table is not a JSON integer array", "path", path, "err", err)
		return nil
	}

	if len(table) > 0 && table[0] != 0 {
		slog.Error("experience table must start at 0 XP for level 1", "got", table[0])
		return nil
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			slog.Error("experience table is not strictly increasing", "index", i)
			return nil
		}
	}

	slog.Info("experience table loaded", "path", path, "levels", len(table))
	return table
}

// MaxLevel returns the highest level the table defines. 0 for an empty table.
func (t ExperienceTable) MaxLevel() int {
	return len(t)
}

// LevelForXP returns the highest level whose threshold does not exceed xp,
// scanning downward from the top of the table. Negative xp or an empty
// table yields level 1.
func (t ExperienceTable) LevelForXP(xp int) int {
	for level := len(t); level >= 1; level-- {
		if xp >= t[level-1] {
			return level
		}
	}
	return 1
}

// XPForLevel returns the cumulative XP threshold for level.
// ok is false when level is outside [1, MaxLevel] or the table is empty.
func (t ExperienceTable) XPForLevel(level int) (int, bool) {
	if level < 1 || level > len(t) {
		return 0, false
	}
	return t[level-1], true
}

// XPToNextLevel returns the XP missing to reach the next level from
// currentXP. ok is false at the maximum level or with an empty table.
func (t ExperienceTable) XPToNextLevel(currentXP int) (int, bool) {
	level := t.LevelForXP(currentXP)
	next, ok := t.XPForLevel(level + 1)
	if !ok {
		return 0, false
	}
	return XPDifference(currentXP, next), true
}

// XPToTargetLevel returns the XP missing to reach targetLevel, 0 when
// currentXP already meets the threshold. ok is false unless
// 1 < targetLevel <= MaxLevel.
func (t ExperienceTable) XPToTargetLevel(currentXP, targetLevel int) (int, bool) {
	if targetLevel <= 1 || targetLevel > len(t) {
		return 0, false
	}
	threshold := t[targetLevel-1]
	if currentXP >= threshold {
		return 0, true
	}
	return threshold - currentXP, true
}

// XPDifference returns targetXP - startXP. Negative when startXP is ahead.
func XPDifference(startXP, targetXP int) int {
	return targetXP - startXP
}
