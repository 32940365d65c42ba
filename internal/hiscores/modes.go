package hiscores

import (
	"errors"
	"fmt"
	"net/url"
)

// Mode selects which hiscores leaderboard to query.
type Mode string

const (
	ModeNormal     Mode = "normal"
	ModeIronman    Mode = "ironman"
	ModeHardcore   Mode = "hardcore"
	ModeUltimate   Mode = "ultimate"
	ModeDeadman    Mode = "deadman"
	ModeSeasonal   Mode = "seasonal"
	ModeTournament Mode = "tournament"
	ModeFreshStart Mode = "fresh_start"
)

// Format selects the wire format of the response.
type Format string

const (
	// FormatJSON hits the index_lite.json endpoint.
	FormatJSON Format = "json"
	// FormatCSV hits the legacy index_lite.ws endpoint.
	FormatCSV Format = "csv"
)

// DefaultBaseURL is the official hiscores service root.
const DefaultBaseURL = "https://secure.runescape.com"

var (
	ErrInvalidMode   = errors.New("invalid hiscores mode")
	ErrInvalidFormat = errors.New("invalid hiscores format")
	ErrBadStatus     = errors.New("hiscores request failed")
)

// modePaths maps each mode onto its service path segment.
var modePaths = map[Mode]string{
	ModeNormal:     "m=hiscore_oldschool",
	ModeIronman:    "m=hiscore_oldschool_ironman",
	ModeHardcore:   "m=hiscore_oldschool_hardcore_ironman",
	ModeUltimate:   "m=hiscore_oldschool_ultimate",
	ModeDeadman:    "m=hiscore_oldschool_deadman",
	ModeSeasonal:   "m=hiscore_oldschool_seasonal",
	ModeTournament: "m=hiscore_oldschool_tournament",
	ModeFreshStart: "m=hiscore_oldschool_fresh_start",
}

// Modes lists every valid mode, for flag validation and error messages.
func Modes() []Mode {
	return []Mode{
		ModeNormal, ModeIronman, ModeHardcore, ModeUltimate,
		ModeDeadman, ModeSeasonal, ModeTournament, ModeFreshStart,
	}
}

// BuildURL constructs the lookup URL for a player against the official
// service. The player name is query-escaped.
func BuildURL(player string, mode Mode, format Format) (string, error) {
	return buildURL(DefaultBaseURL, player, mode, format)
}

func buildURL(base, player string, mode Mode, format Format) (string, error) {
	path, ok := modePaths[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrInvalidMode, mode, Modes())
	}

	var ext string
	switch format {
	case FormatJSON:
		ext = "json"
	case FormatCSV:
		ext = "ws"
	default:
		return "", fmt.Errorf("%w: %q (valid: json, csv)", ErrInvalidFormat, format)
	}

	return fmt.Sprintf("%s/%s/index_lite.%s?player=%s",
		base, path, ext, url.QueryEscape(player)), nil
}
