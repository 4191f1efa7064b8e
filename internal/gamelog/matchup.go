package gamelog

import (
	"fmt"
	"strings"
	"time"
)

const (
	homeMarker    = "vs."
	homeSeparator = "vs. "
	awaySeparator = "@ "
)

// ParseMatchup derives venue and opponent from a matchup string such as
// "LAL vs. BOS" (home) or "LAL @ BOS" (away). Strings with neither marker
// fall back to Away with the whole string as opponent; recognized is false
// for those.
func ParseMatchup(matchup string) (loc Location, opponent string, recognized bool) {
	if strings.Contains(matchup, homeMarker) {
		return LocationHome, afterLast(matchup, homeSeparator), true
	}
	return LocationAway, afterLast(matchup, awaySeparator), strings.Contains(matchup, awaySeparator)
}

func afterLast(s, sep string) string {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s
	}
	return s[i+len(sep):]
}

var dateLayouts = []string{
	"Jan 02, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseGameDate normalizes a source date string to a UTC calendar date
func ParseGameDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return calendarDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", raw)
}
