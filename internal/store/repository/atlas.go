package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/store"
)

// Atlas serves the player directory and game logs out of Postgres. It
// satisfies both directory.Source and gamelog.Source.
type Atlas struct {
	players *PlayerRepository
	teams   *TeamRepository
	logs    *GameLogRepository
}

// NewAtlas wires the repositories over one database handle
func NewAtlas(db *store.Database) *Atlas {
	return &Atlas{
		players: NewPlayerRepository(db),
		teams:   NewTeamRepository(db),
		logs:    NewGameLogRepository(db),
	}
}

func (a *Atlas) Players(ctx context.Context) ([]directory.PlayerIdentity, error) {
	rows, err := a.players.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]directory.PlayerIdentity, len(rows))
	for i, p := range rows {
		out[i] = directory.PlayerIdentity{Name: p.FullName, ID: p.PlayerID}
	}
	return out, nil
}

func (a *Atlas) Teams(ctx context.Context) ([]directory.TeamIdentity, error) {
	rows, err := a.teams.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]directory.TeamIdentity, len(rows))
	for i, t := range rows {
		out[i] = directory.TeamIdentity{Name: t.FullName, ID: t.TeamID, Abbreviation: t.Abbreviation}
	}
	return out, nil
}

// PlayerGameLog renders rows in the same shape the stats feed uses so the
// fetcher can normalize either source.
func (a *Atlas) PlayerGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawGame, error) {
	rows, err := a.logs.GetPlayerSeason(ctx, playerID, season)
	if err != nil {
		return nil, err
	}
	out := make([]gamelog.RawGame, len(rows))
	for i, r := range rows {
		out[i] = gamelog.RawGame{
			GameID:   r.GameID,
			GameDate: r.GameDate.Format("Jan 02, 2006"),
			Matchup:  matchup(r),
			Result:   result(r),
			Points:   r.Points,
			Rebounds: r.Rebounds,
			Assists:  r.Assists,
		}
		if r.MinutesPlayed.Valid {
			out[i].Minutes = strconv.Itoa(int(r.MinutesPlayed.Float64 + 0.5))
		}
	}
	return out, nil
}

func matchup(r store.GameLogRow) string {
	if r.IsHome {
		return fmt.Sprintf("%s vs. %s", r.TeamAbbr, r.OpponentAbbr)
	}
	return fmt.Sprintf("%s @ %s", r.TeamAbbr, r.OpponentAbbr)
}

func result(r store.GameLogRow) string {
	if !r.TeamScore.Valid || !r.OpponentScore.Valid {
		return ""
	}
	if r.TeamScore.Int64 > r.OpponentScore.Int64 {
		return "W"
	}
	return "L"
}
