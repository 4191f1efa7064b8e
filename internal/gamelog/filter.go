package gamelog

import (
	"gonum.org/v1/gonum/stat"
)

// FilterCriteria is a conjunction of predicates over a GameLog. Zero values
// disable a predicate.
type FilterCriteria struct {
	Seasons   []string        `json:"seasons,omitempty"`
	DateRange *DateRange      `json:"date_range,omitempty"`
	Location  LocationFilter  `json:"location,omitempty"`
	Opponent  *OpponentFilter `json:"opponent,omitempty"`
}

// Match reports whether r satisfies every predicate
func (c FilterCriteria) Match(r GameRecord) bool {
	if len(c.Seasons) > 0 && !containsString(c.Seasons, r.Season) {
		return false
	}
	if c.DateRange != nil && !c.DateRange.Contains(r.GameDate) {
		return false
	}
	switch c.Location {
	case LocationOnlyHome:
		if r.Location != LocationHome {
			return false
		}
	case LocationOnlyAway:
		if r.Location != LocationAway {
			return false
		}
	}
	if c.Opponent != nil && !c.Opponent.Matches(r) {
		return false
	}
	return true
}

// ApplyFilters returns the records matching c, in their original order
func ApplyFilters(log GameLog, c FilterCriteria) GameLog {
	out := make(GameLog, 0, len(log))
	for _, r := range log {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// DeriveComposite returns a copy of log with PRA populated on every record
func DeriveComposite(log GameLog) GameLog {
	out := make(GameLog, len(log))
	for i, r := range log {
		r.PRA = r.Points + r.Rebounds + r.Assists
		out[i] = r
	}
	return out
}

// Mean is an arithmetic mean that is undefined over an empty set
type Mean struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Summary holds per-stat means over a filtered log
type Summary struct {
	Games    int  `json:"games"`
	Points   Mean `json:"points"`
	Rebounds Mean `json:"rebounds"`
	Assists  Mean `json:"assists"`
	PRA      Mean `json:"pra"`
}

// MeanOf returns the summary mean for s
func (s Summary) MeanOf(st Stat) Mean {
	switch st {
	case StatPoints:
		return s.Points
	case StatRebounds:
		return s.Rebounds
	case StatAssists:
		return s.Assists
	case StatPRA:
		return s.PRA
	}
	return Mean{}
}

// Summarize computes means over whatever records remain in log
func Summarize(log GameLog) Summary {
	return Summary{
		Games:    len(log),
		Points:   meanOf(StatPoints.Values(log)),
		Rebounds: meanOf(StatRebounds.Values(log)),
		Assists:  meanOf(StatAssists.Values(log)),
		PRA:      meanOf(StatPRA.Values(log)),
	}
}

func meanOf(xs []float64) Mean {
	if len(xs) == 0 {
		return Mean{}
	}
	return Mean{Value: stat.Mean(xs, nil), Valid: true}
}

// Threshold places a value relative to a mean
type Threshold string

const (
	AboveMean Threshold = "above"
	BelowMean Threshold = "below"
)

// Classify returns AboveMean only when value is strictly greater than mean
func Classify(value, mean float64) Threshold {
	if value > mean {
		return AboveMean
	}
	return BelowMean
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
