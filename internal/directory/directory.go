package directory

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrNotFound is returned when no directory entry matches a name
var ErrNotFound = errors.New("not found in directory")

// PlayerIdentity is a resolved player
type PlayerIdentity struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// TeamIdentity is a resolved team
type TeamIdentity struct {
	Name         string `json:"name"`
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

// Source provides full listings of players and teams
type Source interface {
	Players(ctx context.Context) ([]PlayerIdentity, error)
	Teams(ctx context.Context) ([]TeamIdentity, error)
}

// Snapshot resolves names against a Source, loading each listing at most
// once. A Snapshot must not outlive a single pipeline run.
type Snapshot struct {
	source  Source
	players []PlayerIdentity
	teams   []TeamIdentity
	loadedP bool
	loadedT bool
}

// NewSnapshot creates a snapshot backed by source
func NewSnapshot(source Source) *Snapshot {
	return &Snapshot{source: source}
}

// ResolvePlayer finds the player whose full name case-insensitively equals name
func (s *Snapshot) ResolvePlayer(ctx context.Context, name string) (PlayerIdentity, error) {
	if !s.loadedP {
		players, err := s.source.Players(ctx)
		if err != nil {
			return PlayerIdentity{}, fmt.Errorf("loading player directory: %w", err)
		}
		s.players = players
		s.loadedP = true
	}

	want := fold(name)
	for _, p := range s.players {
		if fold(p.Name) == want {
			return p, nil
		}
	}
	return PlayerIdentity{}, fmt.Errorf("player %q: %w", name, ErrNotFound)
}

// ResolveTeam finds the team whose full name case-insensitively equals name
func (s *Snapshot) ResolveTeam(ctx context.Context, name string) (TeamIdentity, error) {
	if !s.loadedT {
		teams, err := s.source.Teams(ctx)
		if err != nil {
			return TeamIdentity{}, fmt.Errorf("loading team directory: %w", err)
		}
		s.teams = teams
		s.loadedT = true
	}

	want := fold(name)
	for _, t := range s.teams {
		if fold(t.Name) == want {
			return t, nil
		}
	}
	return TeamIdentity{}, fmt.Errorf("team %q: %w", name, ErrNotFound)
}

func fold(s string) string {
	return cases.Fold().String(s)
}
