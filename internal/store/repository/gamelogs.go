package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// GameLogRepository reads per-player box score lines
type GameLogRepository struct {
	db *store.Database
}

// NewGameLogRepository creates a new game log repository
func NewGameLogRepository(db *store.Database) *GameLogRepository {
	return &GameLogRepository{db: db}
}

// GetPlayerSeason returns a player's final regular-season games for the
// season labelled seasonYear (e.g. "2023-24"), newest first.
func (r *GameLogRepository) GetPlayerSeason(ctx context.Context, playerID int, seasonYear string) ([]store.GameLogRow, error) {
	query := `
		SELECT g.external_id, g.game_date,
			own.abbreviation AS team_abbr,
			opp.abbreviation AS opponent_abbr,
			(g.home_team_id = pgs.team_id) AS is_home,
			CASE WHEN g.home_team_id = pgs.team_id THEN g.home_score ELSE g.away_score END AS team_score,
			CASE WHEN g.home_team_id = pgs.team_id THEN g.away_score ELSE g.home_score END AS opponent_score,
			pgs.minutes_played, pgs.points, pgs.rebounds, pgs.assists
		FROM player_game_stats pgs
		JOIN games g ON pgs.game_id = g.game_id
		JOIN seasons s ON g.season_id = s.season_id
		JOIN teams own ON own.team_id = pgs.team_id
		JOIN teams opp ON opp.team_id = CASE WHEN g.home_team_id = pgs.team_id THEN g.away_team_id ELSE g.home_team_id END
		WHERE pgs.player_id = $1
			AND s.season_year = $2
			AND s.season_type = 'regular'
			AND g.status = 'final'
		ORDER BY g.game_date DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("querying player season: %w", err)
	}
	defer rows.Close()

	var out []store.GameLogRow
	for rows.Next() {
		var g store.GameLogRow
		err := rows.Scan(
			&g.GameID, &g.GameDate, &g.TeamAbbr, &g.OpponentAbbr, &g.IsHome,
			&g.TeamScore, &g.OpponentScore, &g.MinutesPlayed,
			&g.Points, &g.Rebounds, &g.Assists,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game log row: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
