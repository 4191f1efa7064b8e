package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/store"
)

func newMockAtlas(t *testing.T) (*Atlas, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAtlas(store.Wrap(db)), mock
}

func TestAtlas_PlayerGameLog(t *testing.T) {
	atlas, mock := newMockAtlas(t)

	cols := []string{"external_id", "game_date", "team_abbr", "opponent_abbr", "is_home",
		"team_score", "opponent_score", "minutes_played", "points", "rebounds", "assists"}
	rows := sqlmock.NewRows(cols).
		AddRow("0022300010", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "LAL", "BOS", false, 110, 104, 36.4, 30, 8, 9).
		AddRow("0022300001", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "LAL", "MEM", true, 99, 101, nil, 25, 5, 8)

	mock.ExpectQuery(regexp.QuoteMeta("FROM player_game_stats pgs")).
		WithArgs(2544, "2023-24").
		WillReturnRows(rows)

	games, err := atlas.PlayerGameLog(context.Background(), 2544, "2023-24")
	if err != nil {
		t.Fatalf("PlayerGameLog: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	away := games[0]
	if away.Matchup != "LAL @ BOS" || away.Result != "W" || away.Minutes != "36" {
		t.Errorf("unexpected away row: %+v", away)
	}
	if away.GameDate != "Jan 05, 2024" {
		t.Errorf("GameDate = %q", away.GameDate)
	}
	home := games[1]
	if home.Matchup != "LAL vs. MEM" || home.Result != "L" || home.Minutes != "" {
		t.Errorf("unexpected home row: %+v", home)
	}

	// The synthesized rows must round-trip through the normal matchup parser.
	loc, opp, ok := gamelog.ParseMatchup(home.Matchup)
	if loc != gamelog.LocationHome || opp != "MEM" || !ok {
		t.Errorf("ParseMatchup(%q) = %v %q %v", home.Matchup, loc, opp, ok)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAtlas_Directory(t *testing.T) {
	atlas, mock := newMockAtlas(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM players")).
		WillReturnRows(sqlmock.NewRows([]string{"player_id", "full_name"}).
			AddRow(2544, "LeBron James").
			AddRow(201939, "Stephen Curry"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM teams")).
		WillReturnRows(sqlmock.NewRows([]string{"team_id", "abbreviation", "full_name"}).
			AddRow(1610612738, "BOS", "Boston Celtics"))

	players, err := atlas.Players(context.Background())
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if len(players) != 2 || players[1].Name != "Stephen Curry" || players[1].ID != 201939 {
		t.Errorf("unexpected players: %+v", players)
	}

	teams, err := atlas.Teams(context.Background())
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Abbreviation != "BOS" {
		t.Errorf("unexpected teams: %+v", teams)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAtlas_QueryError(t *testing.T) {
	atlas, mock := newMockAtlas(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM player_game_stats")).WillReturnError(boom)

	_, err := atlas.PlayerGameLog(context.Background(), 1, "2023-24")
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped driver error, got %v", err)
	}
}
