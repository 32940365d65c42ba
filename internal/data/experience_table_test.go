package data

import (
	"os"
	"path/filepath"
	"testing"
)

const testTablePath = "testdata/xp_table.json"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func loadTestTable(t *testing.T) ExperienceTable {
	t.Helper()
	table := LoadExperienceTable(testTablePath)
	if len(table) == 0 {
		t.Fatalf("LoadExperienceTable(%q) returned empty table", testTablePath)
	}
	return table
}

func TestLoadExperienceTable(t *testing.T) {
	table := loadTestTable(t)

	if got := table.MaxLevel(); got != MaxVirtualLevel {
		t.Errorf("MaxLevel() = %d, want %d", got, MaxVirtualLevel)
	}
	if table[0] != 0 {
		t.Errorf("table[0] = %d, want 0 (level 1 requires no XP)", table[0])
	}
}

func TestLoadExperienceTableDegraded(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
		{"malformed json", "testdata"}, // a directory, read fails
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if table := LoadExperienceTable(tt.path); len(table) != 0 {
				t.Errorf("LoadExperienceTable(%q) = %d entries, want empty", tt.path, len(table))
			}
		})
	}
}

func TestLoadExperienceTableRejectsBrokenContent(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"a":1}`},
		{"non-zero start", `[5, 83, 174]`},
		{"not increasing", `[0, 83, 83]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			writeFile(t, path, tt.content)
			if table := LoadExperienceTable(path); len(table) != 0 {
				t.Errorf("LoadExperienceTable(%q) = %d entries, want empty", tt.content, len(table))
			}
		})
	}
}

func TestExperienceTableMonotonic(t *testing.T) {
	table := loadTestTable(t)
	for i := 1; i < len(table); i++ {
		if table[i-1] >= table[i] {
			t.Errorf("table[%d]=%d >= table[%d]=%d — must be strictly increasing",
				i-1, table[i-1], i, table[i])
		}
	}
}

func TestLevelForXP(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{82, 1},   // just below level 2
		{83, 2},   // exactly level 2
		{84, 2},   // just above level 2
		{173, 2},  // just below level 3
		{174, 3},  // exactly level 3
		{13034430, 98}, // one XP short of level 99
		{13034431, 99}, // exactly level 99
		{MaxXP, MaxVirtualLevel},
		{-1, 1}, // negative XP clamps to level 1
	}

	for _, tt := range tests {
		if got := table.LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPEmptyTable(t *testing.T) {
	var empty ExperienceTable
	if got := empty.LevelForXP(1_000_000); got != 1 {
		t.Errorf("LevelForXP on empty table = %d, want 1", got)
	}
}

func TestXPForLevel(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		level  int
		want   int
		wantOK bool
	}{
		{1, 0, true},
		{2, 83, true},
		{10, 1154, true},
		{99, 13034431, true},
		{126, 188884740, true},
		{0, 0, false},
		{127, 0, false},
		{-3, 0, false},
	}

	for _, tt := range tests {
		got, ok := table.XPForLevel(tt.level)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("XPForLevel(%d) = (%d, %v), want (%d, %v)",
				tt.level, got, ok, tt.want, tt.wantOK)
		}
	}

	var empty ExperienceTable
	if _, ok := empty.XPForLevel(1); ok {
		t.Error("XPForLevel on empty table reported ok")
	}
}

// Every level must round-trip through its own threshold.
func TestLevelXPRoundTrip(t *testing.T) {
	table := loadTestTable(t)
	for level := 1; level <= table.MaxLevel(); level++ {
		xp, ok := table.XPForLevel(level)
		if !ok {
			t.Fatalf("XPForLevel(%d) not ok", level)
		}
		if got := table.LevelForXP(xp); got != level {
			t.Errorf("LevelForXP(XPForLevel(%d)=%d) = %d", level, xp, got)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		name   string
		xp     int
		want   int
		wantOK bool
	}{
		{"fresh skill", 0, 83, true},
		{"one short of 99", 13034430, 1, true},
		{"at max virtual level", 188884740, 0, false},
		{"xp cap", MaxXP, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.XPToNextLevel(tt.xp)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("XPToNextLevel(%d) = (%d, %v), want (%d, %v)",
					tt.xp, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	var empty ExperienceTable
	if _, ok := empty.XPToNextLevel(100); ok {
		t.Error("XPToNextLevel on empty table reported ok")
	}
}

func TestXPToTargetLevel(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		name   string
		xp     int
		target int
		want   int
		wantOK bool
	}{
		{"shortfall", 0, 2, 83, true},
		{"already met", 83, 2, 0, true},
		{"well past", 500, 2, 0, true},
		{"to 99", 13034430, 99, 1, true},
		{"target too low", 100, 1, 0, false},
		{"target zero", 100, 0, 0, false},
		{"target past table", 100, 127, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.XPToTargetLevel(tt.xp, tt.target)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("XPToTargetLevel(%d, %d) = (%d, %v), want (%d, %v)",
					tt.xp, tt.target, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// A satisfied target stays satisfied as XP grows.
func TestXPToTargetLevelIdempotent(t *testing.T) {
	table := loadTestTable(t)

	threshold, _ := table.XPForLevel(50)
	for _, xp := range []int{threshold, threshold + 1, threshold * 2, MaxXP} {
		got, ok := table.XPToTargetLevel(xp, 50)
		if !ok || got != 0 {
			t.Errorf("XPToTargetLevel(%d, 50) = (%d, %v), want (0, true)", xp, got, ok)
		}
	}
}

func TestXPDifference(t *testing.T) {
	tests := []struct {
		start, target, want int
	}{
		{0, 83, 83},
		{100, 50, -50},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := XPDifference(tt.start, tt.target); got != tt.want {
			t.Errorf("XPDifference(%d, %d) = %d, want %d", tt.start, tt.target, got, tt.want)
		}
	}
}

func TestXPTableCached(t *testing.T) {
	SetXPTablePath(testTablePath)

	first := XPTable()
	second := XPTable()

	if len(first) == 0 {
		t.Fatal("XPTable() returned empty table")
	}
	if len(first) != len(second) {
		t.Errorf("cached loads disagree: %d vs %d entries", len(first), len(second))
	}

	// Path changes after first load must not re-read.
	SetXPTablePath("nonexistent.json")
	if got := XPTable(); len(got) != len(first) {
		t.Errorf("XPTable() reloaded after path change: %d entries", len(got))
	}
}
