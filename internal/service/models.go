package service

import (
	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/trend"
)

// Request describes one dashboard run. Dates are YYYY-MM-DD; empty fields
// fall back to presets or disable the predicate.
type Request struct {
	Player        string   `json:"player"`
	ComparePlayer string   `json:"compare_player,omitempty"`
	Seasons       []string `json:"seasons,omitempty"`
	From          string   `json:"from,omitempty"`
	To            string   `json:"to,omitempty"`
	Location      string   `json:"location,omitempty"`
	Opponent      string   `json:"opponent,omitempty"`
	OpponentExact bool     `json:"opponent_exact,omitempty"`
	Stat          string   `json:"stat,omitempty"`

	// Surface names the caller in published events (rest, ws, mcp, cli)
	Surface string `json:"-"`
}

// PlayerReport is everything the dashboard shows for one player
type PlayerReport struct {
	Player     directory.PlayerIdentity `json:"player"`
	Found      bool                     `json:"found"`
	Games      gamelog.GameLog          `json:"games"`
	Summary    gamelog.Summary          `json:"summary"`
	Prediction *trend.Prediction        `json:"prediction,omitempty"`
	Panels     []chart.Panel            `json:"panels,omitempty"`
}

// Dashboard is the result of one run
type Dashboard struct {
	RequestID  string                  `json:"request_id"`
	Seasons    []string                `json:"seasons"`
	Stat       gamelog.Stat            `json:"stat"`
	Opponent   *directory.TeamIdentity `json:"opponent,omitempty"`
	Players    []PlayerReport          `json:"players"`
	Comparison []chart.Panel           `json:"comparison,omitempty"`
	Warnings   []string                `json:"warnings,omitempty"`
}

// Primary returns the first player's report
func (d *Dashboard) Primary() *PlayerReport {
	if len(d.Players) == 0 {
		return nil
	}
	return &d.Players[0]
}

// TotalGames counts games across all reports
func (d *Dashboard) TotalGames() int {
	n := 0
	for _, p := range d.Players {
		n += len(p.Games)
	}
	return n
}
