package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// PlayerRepository reads the player directory
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetAll returns every player with a display name
func (r *PlayerRepository) GetAll(ctx context.Context) ([]store.PlayerRow, error) {
	query := `
		SELECT player_id, full_name
		FROM players
		WHERE sport = 'basketball_nba' AND full_name <> ''
		ORDER BY player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []store.PlayerRow
	for rows.Next() {
		var p store.PlayerRow
		if err := rows.Scan(&p.PlayerID, &p.FullName); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
