package chart

import (
	"fmt"
	"sort"

	"github.com/fortuna/courtside/internal/gamelog"
)

// Point is one bar in a series
type Point struct {
	Label     string            `json:"label"`
	Value     float64           `json:"value"`
	Threshold gamelog.Threshold `json:"threshold"`
	Location  gamelog.Location  `json:"location"`
}

// Series is one player's values for a single stat, oldest game first
type Series struct {
	Name   string       `json:"name"`
	Stat   gamelog.Stat `json:"stat"`
	Mean   gamelog.Mean `json:"mean"`
	Points []Point      `json:"points"`
}

// Panel is one chart: a stat plotted for one or more players
type Panel struct {
	Title  string       `json:"title"`
	Stat   gamelog.Stat `json:"stat"`
	Series []Series     `json:"series"`
}

var (
	playerStats     = []gamelog.Stat{gamelog.StatPoints, gamelog.StatRebounds, gamelog.StatAssists, gamelog.StatPRA}
	comparisonStats = []gamelog.Stat{gamelog.StatPoints, gamelog.StatRebounds, gamelog.StatAssists}
)

// PointLabel renders the x-axis label for a game, e.g. "Jan 02 vs BOS (Home)"
func PointLabel(r gamelog.GameRecord) string {
	return fmt.Sprintf("%s vs %s (%s)", r.GameDate.Format("Jan 02"), r.Opponent, r.Location)
}

// BuildSeries lays log out chronologically. Each point is classified
// against mean; an invalid mean classifies everything below.
func BuildSeries(name string, log gamelog.GameLog, st gamelog.Stat, mean gamelog.Mean) Series {
	games := make(gamelog.GameLog, len(log))
	copy(games, log)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].GameDate.Before(games[j].GameDate)
	})

	s := Series{Name: name, Stat: st, Mean: mean, Points: make([]Point, len(games))}
	for i, g := range games {
		v := st.Value(g)
		th := gamelog.BelowMean
		if mean.Valid {
			th = gamelog.Classify(v, mean.Value)
		}
		s.Points[i] = Point{Label: PointLabel(g), Value: v, Threshold: th, Location: g.Location}
	}
	return s
}

// BuildPlayerPanels returns the PTS, REB, AST and PRA panels for one player
func BuildPlayerPanels(name string, log gamelog.GameLog, summary gamelog.Summary) []Panel {
	panels := make([]Panel, 0, len(playerStats))
	for _, st := range playerStats {
		panels = append(panels, Panel{
			Title:  fmt.Sprintf("%s: %s", name, st.Label()),
			Stat:   st,
			Series: []Series{BuildSeries(name, log, st, summary.MeanOf(st))},
		})
	}
	return panels
}

// BuildComparisonPanels puts two players side by side for PTS, REB and AST
func BuildComparisonPanels(nameA string, logA gamelog.GameLog, nameB string, logB gamelog.GameLog) []Panel {
	sumA := gamelog.Summarize(logA)
	sumB := gamelog.Summarize(logB)

	panels := make([]Panel, 0, len(comparisonStats))
	for _, st := range comparisonStats {
		panels = append(panels, Panel{
			Title: fmt.Sprintf("%s vs %s: %s", nameA, nameB, st.Label()),
			Stat:  st,
			Series: []Series{
				BuildSeries(nameA, logA, st, sumA.MeanOf(st)),
				BuildSeries(nameB, logB, st, sumB.MeanOf(st)),
			},
		})
	}
	return panels
}

// Find returns the panel for st, if present
func Find(panels []Panel, st gamelog.Stat) (Panel, bool) {
	for _, p := range panels {
		if p.Stat == st {
			return p, true
		}
	}
	return Panel{}, false
}
