package store

import (
	"database/sql"
	"time"
)

// PlayerRow is the subset of the players table the dashboard reads
type PlayerRow struct {
	PlayerID int    `db:"player_id"`
	FullName string `db:"full_name"`
}

// TeamRow is the subset of the teams table the dashboard reads
type TeamRow struct {
	TeamID       int    `db:"team_id"`
	Abbreviation string `db:"abbreviation"`
	FullName     string `db:"full_name"`
}

// GameLogRow is one player appearance joined with its game and season
type GameLogRow struct {
	GameID        string          `db:"external_id"`
	GameDate      time.Time       `db:"game_date"`
	TeamAbbr      string          `db:"team_abbr"`
	OpponentAbbr  string          `db:"opponent_abbr"`
	IsHome        bool            `db:"is_home"`
	TeamScore     sql.NullInt64   `db:"team_score"`
	OpponentScore sql.NullInt64   `db:"opponent_score"`
	MinutesPlayed sql.NullFloat64 `db:"minutes_played"`
	Points        int             `db:"points"`
	Rebounds      int             `db:"rebounds"`
	Assists       int             `db:"assists"`
}
