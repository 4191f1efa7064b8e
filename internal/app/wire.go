// Package app assembles the dashboard service from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/ingest/nba"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
	"github.com/fortuna/courtside/internal/telemetry"
)

// Source provides both the player directory and game logs
type Source interface {
	directory.Source
	gamelog.Source
}

// App holds the assembled service and whatever needs closing
type App struct {
	Service  *service.DashboardService
	Database *store.Database
	closers  []func() error
}

// New wires the configured source, presets and optional event stream
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := telemetry.Component("app")
	a := &App{}

	presets, err := config.LoadDashboard(cfg.DashboardConfigPath)
	if err != nil {
		return nil, err
	}

	var src Source
	switch cfg.Source {
	case config.SourceNBA:
		src = nba.NewClient(nba.Options{
			BaseURL:        cfg.NBAStatsBase,
			Timeout:        cfg.NBAStatsTimeout,
			RequestsPerSec: cfg.NBAStatsRPS,
		})
		log.WithField("base", cfg.NBAStatsBase).Info("using stats.nba.com source")
	case config.SourceAtlas:
		db, err := store.NewDatabase(ctx, cfg.AtlasDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to atlas: %w", err)
		}
		a.Database = db
		a.closers = append(a.closers, db.Close)
		src = repository.NewAtlas(db)
		log.Info("using atlas source")
	default:
		return nil, fmt.Errorf("unknown source %q (want %s or %s)", cfg.Source, config.SourceNBA, config.SourceAtlas)
	}

	var events service.EventPublisher
	if cfg.RedisURL != "" {
		pub, err := publisher.NewRedisPublisher(ctx, cfg.RedisURL)
		if err != nil {
			// events are optional; run without them
			log.WithError(err).Warn("redis unavailable, dashboard events disabled")
		} else {
			events = pub
			a.closers = append(a.closers, pub.Close)
		}
	}

	a.Service = service.NewDashboardService(src, src, presets, events)
	return a, nil
}

// Close releases the database and redis connections
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
