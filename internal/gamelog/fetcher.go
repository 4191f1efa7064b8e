package gamelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/telemetry"
	"github.com/sirupsen/logrus"
)

// Source returns a player's raw per-game rows for one season, newest first
type Source interface {
	PlayerGameLog(ctx context.Context, playerID int, season string) ([]RawGame, error)
}

// OpponentFilter restricts a log to games against one team
type OpponentFilter struct {
	Team directory.TeamIdentity `json:"team"`
	// Exact compares the derived opponent instead of searching the matchup
	// string for the abbreviation.
	Exact bool `json:"exact"`
}

// Matches reports whether r was played against the filter's team
func (o OpponentFilter) Matches(r GameRecord) bool {
	if o.Exact {
		return r.Opponent == o.Team.Abbreviation
	}
	return strings.Contains(r.Matchup, o.Team.Abbreviation)
}

// FetchOptions are the optional predicates applied while fetching
type FetchOptions struct {
	DateRange *DateRange
	Opponent  *OpponentFilter
}

// Fetcher retrieves and normalizes game logs from a Source
type Fetcher struct {
	source Source
	log    *logrus.Entry
}

// NewFetcher creates a fetcher over source
func NewFetcher(source Source) *Fetcher {
	return &Fetcher{
		source: source,
		log:    telemetry.Component("fetcher"),
	}
}

// FetchGames retrieves one result set per season, in the order requested,
// and concatenates them without re-sorting
func (f *Fetcher) FetchGames(ctx context.Context, playerID int, seasons []string, opts FetchOptions) (GameLog, error) {
	var out GameLog
	for _, season := range seasons {
		rows, err := f.source.PlayerGameLog(ctx, playerID, season)
		if err != nil {
			return nil, fmt.Errorf("fetching game log for season %s: %w", season, err)
		}

		kept := 0
		for _, row := range rows {
			rec, err := normalize(row, season)
			if err != nil {
				f.log.WithFields(logrus.Fields{"player_id": playerID, "season": season}).
					Warnf("skipping row: %v", err)
				continue
			}
			if opts.DateRange != nil && !opts.DateRange.Contains(rec.GameDate) {
				continue
			}
			if opts.Opponent != nil && !opts.Opponent.Matches(rec) {
				continue
			}
			out = append(out, rec)
			kept++
		}

		f.log.WithFields(logrus.Fields{
			"player_id": playerID,
			"season":    season,
			"rows":      len(rows),
			"kept":      kept,
		}).Debug("fetched season")
	}
	return out, nil
}

func normalize(row RawGame, season string) (GameRecord, error) {
	date, err := ParseGameDate(row.GameDate)
	if err != nil {
		return GameRecord{}, err
	}
	loc, opp, ok := ParseMatchup(row.Matchup)
	return GameRecord{
		GameID:            row.GameID,
		Season:            season,
		GameDate:          date,
		Matchup:           row.Matchup,
		Result:            row.Result,
		Minutes:           row.Minutes,
		Points:            row.Points,
		Rebounds:          row.Rebounds,
		Assists:           row.Assists,
		Location:          loc,
		Opponent:          opp,
		MatchupRecognized: ok,
	}, nil
}
