package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/telemetry"
	"github.com/fortuna/courtside/internal/trend"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidRequest marks malformed request parameters
var ErrInvalidRequest = errors.New("invalid request")

const dateLayout = "2006-01-02"

// EventPublisher receives one event per completed run
type EventPublisher interface {
	PublishDashboard(ctx context.Context, ev publisher.DashboardEvent) error
}

// DashboardService runs the resolve, fetch, filter, predict and chart
// pipeline. It holds no per-run state.
type DashboardService struct {
	directory directory.Source
	fetcher   *gamelog.Fetcher
	presets   config.Dashboard
	events    EventPublisher
	log       *logrus.Entry
}

// NewDashboardService creates the service. events may be nil.
func NewDashboardService(dir directory.Source, logs gamelog.Source, presets config.Dashboard, events EventPublisher) *DashboardService {
	return &DashboardService{
		directory: dir,
		fetcher:   gamelog.NewFetcher(logs),
		presets:   presets,
		events:    events,
		log:       telemetry.Component("dashboard"),
	}
}

// Presets returns the configured dashboard presets
func (s *DashboardService) Presets() config.Dashboard {
	return s.presets
}

// ResolvePlayer looks a player up in a fresh directory snapshot
func (s *DashboardService) ResolvePlayer(ctx context.Context, name string) (directory.PlayerIdentity, error) {
	return directory.NewSnapshot(s.directory).ResolvePlayer(ctx, name)
}

// ResolveTeam looks a team up in a fresh directory snapshot
func (s *DashboardService) ResolveTeam(ctx context.Context, name string) (directory.TeamIdentity, error) {
	return directory.NewSnapshot(s.directory).ResolveTeam(ctx, name)
}

// plan is a validated request
type plan struct {
	names    []string
	seasons  []string
	dates    *gamelog.DateRange
	location gamelog.LocationFilter
	stat     gamelog.Stat
}

func (s *DashboardService) plan(req Request) (plan, error) {
	p := plan{seasons: req.Seasons, location: gamelog.LocationAll, stat: gamelog.StatPoints}

	name := strings.TrimSpace(req.Player)
	if name == "" {
		return plan{}, fmt.Errorf("%w: player is required", ErrInvalidRequest)
	}
	p.names = []string{name}
	if c := strings.TrimSpace(req.ComparePlayer); c != "" {
		p.names = append(p.names, c)
	}

	if len(p.seasons) == 0 {
		p.seasons = s.presets.SelectedSeasons()
	}

	if req.From != "" || req.To != "" {
		r := gamelog.DateRange{End: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)}
		var err error
		if req.From != "" {
			if r.Start, err = time.Parse(dateLayout, req.From); err != nil {
				return plan{}, fmt.Errorf("%w: from: %v", ErrInvalidRequest, err)
			}
		}
		if req.To != "" {
			if r.End, err = time.Parse(dateLayout, req.To); err != nil {
				return plan{}, fmt.Errorf("%w: to: %v", ErrInvalidRequest, err)
			}
		}
		p.dates = &r
	}

	switch strings.ToLower(strings.TrimSpace(req.Location)) {
	case "", "all":
	case "home":
		p.location = gamelog.LocationOnlyHome
	case "away":
		p.location = gamelog.LocationOnlyAway
	default:
		return plan{}, fmt.Errorf("%w: location must be All, Home or Away", ErrInvalidRequest)
	}

	if req.Stat != "" {
		st, err := gamelog.ParseStat(req.Stat)
		if err != nil {
			return plan{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		p.stat = st
	}
	return p, nil
}

// Run executes one dashboard run. Names that do not resolve produce
// warnings, not errors; only source failures and invalid parameters are
// returned as errors.
func (s *DashboardService) Run(ctx context.Context, req Request) (*Dashboard, error) {
	p, err := s.plan(req)
	if err != nil {
		return nil, err
	}

	dash := &Dashboard{
		RequestID: uuid.NewString(),
		Seasons:   p.seasons,
		Stat:      p.stat,
	}
	log := s.log.WithFields(logrus.Fields{"request_id": dash.RequestID, "surface": req.Surface})
	snap := directory.NewSnapshot(s.directory)

	criteria := gamelog.FilterCriteria{Seasons: p.seasons, DateRange: p.dates, Location: p.location}
	if opp := strings.TrimSpace(req.Opponent); opp != "" {
		team, err := snap.ResolveTeam(ctx, opp)
		if errors.Is(err, directory.ErrNotFound) {
			dash.Warnings = append(dash.Warnings, fmt.Sprintf("Team '%s' not found! Check the name.", opp))
			for _, name := range p.names {
				dash.Players = append(dash.Players, PlayerReport{Player: directory.PlayerIdentity{Name: name}})
			}
			s.publish(ctx, log, req, dash)
			return dash, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolving opponent: %w", err)
		}
		dash.Opponent = &team
		criteria.Opponent = &gamelog.OpponentFilter{Team: team, Exact: req.OpponentExact}
	}

	for _, name := range p.names {
		report, err := s.report(ctx, snap, name, p, criteria)
		if err != nil {
			return nil, err
		}
		if !report.Found {
			dash.Warnings = append(dash.Warnings, fmt.Sprintf("Player '%s' not found! Check the name.", name))
		} else if len(report.Games) == 0 {
			dash.Warnings = append(dash.Warnings, fmt.Sprintf("No games to display for '%s'.", report.Player.Name))
		}
		dash.Players = append(dash.Players, report)
	}

	if len(dash.Players) == 2 && len(dash.Players[0].Games) > 0 && len(dash.Players[1].Games) > 0 {
		a, b := dash.Players[0], dash.Players[1]
		dash.Comparison = chart.BuildComparisonPanels(a.Player.Name, a.Games, b.Player.Name, b.Games)
	}

	log.WithFields(logrus.Fields{
		"players":  len(dash.Players),
		"games":    dash.TotalGames(),
		"warnings": len(dash.Warnings),
	}).Info("dashboard built")

	s.publish(ctx, log, req, dash)
	return dash, nil
}

func (s *DashboardService) report(ctx context.Context, snap *directory.Snapshot, name string, p plan, criteria gamelog.FilterCriteria) (PlayerReport, error) {
	player, err := snap.ResolvePlayer(ctx, name)
	if errors.Is(err, directory.ErrNotFound) {
		return PlayerReport{Player: directory.PlayerIdentity{Name: name}}, nil
	}
	if err != nil {
		return PlayerReport{}, fmt.Errorf("resolving player: %w", err)
	}

	games, err := s.fetcher.FetchGames(ctx, player.ID, p.seasons, gamelog.FetchOptions{
		DateRange: criteria.DateRange,
		Opponent:  criteria.Opponent,
	})
	if err != nil {
		return PlayerReport{}, err
	}
	games = gamelog.DeriveComposite(gamelog.ApplyFilters(games, criteria))

	report := PlayerReport{
		Player:  player,
		Found:   true,
		Games:   games,
		Summary: gamelog.Summarize(games),
	}
	if pred, err := trend.PredictNext(games, p.stat); err == nil {
		report.Prediction = &pred
	}
	if len(games) > 0 {
		report.Panels = chart.BuildPlayerPanels(player.Name, games, report.Summary)
	}
	return report, nil
}

func (s *DashboardService) publish(ctx context.Context, log *logrus.Entry, req Request, dash *Dashboard) {
	if s.events == nil {
		return
	}
	ev := publisher.DashboardEvent{
		RequestID: dash.RequestID,
		Surface:   req.Surface,
		Seasons:   dash.Seasons,
		Games:     dash.TotalGames(),
		Warnings:  len(dash.Warnings),
	}
	for _, p := range dash.Players {
		if p.Found {
			ev.Players = append(ev.Players, p.Player.ID)
		}
	}
	if err := s.events.PublishDashboard(ctx, ev); err != nil {
		log.WithError(err).Warn("publishing dashboard event")
	}
}
