package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/store"
)

// TeamRepository reads the franchise table
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns all active NBA teams
func (r *TeamRepository) GetAll(ctx context.Context) ([]store.TeamRow, error) {
	query := `
		SELECT team_id, abbreviation, full_name
		FROM teams
		WHERE is_active = true
		ORDER BY abbreviation
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []store.TeamRow
	for rows.Next() {
		var t store.TeamRow
		if err := rows.Scan(&t.TeamID, &t.Abbreviation, &t.FullName); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
