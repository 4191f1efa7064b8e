package gamelog

import (
	"time"
)

// Location is the venue orientation of a game from the player's side
type Location string

const (
	LocationHome Location = "Home"
	LocationAway Location = "Away"
)

// LocationFilter selects games by venue
type LocationFilter string

const (
	LocationAll      LocationFilter = "All"
	LocationOnlyHome LocationFilter = "Home"
	LocationOnlyAway LocationFilter = "Away"
)

// RawGame is one row as returned by a game log source
type RawGame struct {
	GameID   string
	GameDate string
	Matchup  string
	Result   string
	Minutes  string
	Points   int
	Rebounds int
	Assists  int
}

// GameRecord is one game played, with venue and opponent derived from the matchup
type GameRecord struct {
	GameID            string    `json:"game_id,omitempty"`
	Season            string    `json:"season"`
	GameDate          time.Time `json:"game_date"`
	Matchup           string    `json:"matchup"`
	Result            string    `json:"result,omitempty"`
	Minutes           string    `json:"minutes,omitempty"`
	Points            int       `json:"points"`
	Rebounds          int       `json:"rebounds"`
	Assists           int       `json:"assists"`
	PRA               int       `json:"pra"`
	Location          Location  `json:"location"`
	Opponent          string    `json:"opponent"`
	MatchupRecognized bool      `json:"matchup_recognized"`
}

// GameLog is an ordered sequence of games. Sources deliver newest first.
type GameLog []GameRecord

// DateRange is an inclusive calendar-date range
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the range, comparing calendar dates only
func (r DateRange) Contains(d time.Time) bool {
	day := calendarDate(d)
	return !day.Before(calendarDate(r.Start)) && !day.After(calendarDate(r.End))
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
