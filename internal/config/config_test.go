package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SOURCE", "NBA_STATS_RPS", "NBA_STATS_TIMEOUT_SEC", "REDIS_URL", "REST_PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Source != SourceNBA {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.NBAStatsRPS != 2 || cfg.NBAStatsTimeout != 20*time.Second {
		t.Errorf("unexpected nba defaults: %v %v", cfg.NBAStatsRPS, cfg.NBAStatsTimeout)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL should default to empty, got %q", cfg.RedisURL)
	}
	if cfg.RESTPort != "8080" {
		t.Errorf("RESTPort = %q", cfg.RESTPort)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SOURCE", "atlas")
	t.Setenv("NBA_STATS_RPS", "0.5")
	t.Setenv("NBA_STATS_TIMEOUT_SEC", "bogus")

	cfg := Load()
	if cfg.Source != SourceAtlas {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.NBAStatsRPS != 0.5 {
		t.Errorf("NBAStatsRPS = %v", cfg.NBAStatsRPS)
	}
	if cfg.NBAStatsTimeout != 20*time.Second {
		t.Errorf("unparseable value should fall back, got %v", cfg.NBAStatsTimeout)
	}
}

func TestLoadDashboard_MissingFile(t *testing.T) {
	d, err := LoadDashboard(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}
	sel := d.SelectedSeasons()
	if len(sel) != 2 || sel[0] != "2024-25" || sel[1] != "2023-24" {
		t.Errorf("SelectedSeasons = %v", sel)
	}
	if d.DefaultPlayer != "LeBron James" {
		t.Errorf("DefaultPlayer = %q", d.DefaultPlayer)
	}
	if !d.StartDate().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", d.StartDate())
	}
}

func TestLoadDashboard_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	body := "seasons: [\"2023-24\", \"2022-23\"]\ndefault_seasons: 5\ndefault_player: Stephen Curry\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDashboard(path)
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}
	if d.DefaultPlayer != "Stephen Curry" {
		t.Errorf("DefaultPlayer = %q", d.DefaultPlayer)
	}
	if d.DefaultSeasons != 2 {
		t.Errorf("DefaultSeasons should clamp to 2, got %d", d.DefaultSeasons)
	}
	if d.DefaultStart != "2024-01-01" {
		t.Errorf("DefaultStart should keep default, got %q", d.DefaultStart)
	}
}

func TestLoadDashboard_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("seasons: [unclosed"), 0o644)
	if _, err := LoadDashboard(bad); err == nil {
		t.Error("expected yaml error")
	}

	date := filepath.Join(dir, "date.yaml")
	os.WriteFile(date, []byte("default_start: yesterday\n"), 0o644)
	if _, err := LoadDashboard(date); err == nil {
		t.Error("expected date error")
	}
}
