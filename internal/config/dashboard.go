package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Dashboard holds the presets offered to dashboard users
type Dashboard struct {
	Seasons        []string `yaml:"seasons"`
	DefaultSeasons int      `yaml:"default_seasons"`
	DefaultPlayer  string   `yaml:"default_player"`
	DefaultStart   string   `yaml:"default_start"`
}

// DefaultDashboard is used when no presets file exists
func DefaultDashboard() Dashboard {
	return Dashboard{
		Seasons:        []string{"2024-25", "2023-24", "2022-23", "2021-22"},
		DefaultSeasons: 2,
		DefaultPlayer:  "LeBron James",
		DefaultStart:   "2024-01-01",
	}
}

// LoadDashboard reads presets from path. A missing file yields the
// defaults; fields left empty in the file keep their default values.
func LoadDashboard(path string) (Dashboard, error) {
	d := DefaultDashboard()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return Dashboard{}, fmt.Errorf("read dashboard config: %w", err)
	}

	var file Dashboard
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Dashboard{}, fmt.Errorf("parse dashboard config: %w", err)
	}

	if len(file.Seasons) > 0 {
		d.Seasons = file.Seasons
	}
	if file.DefaultSeasons > 0 {
		d.DefaultSeasons = file.DefaultSeasons
	}
	if file.DefaultPlayer != "" {
		d.DefaultPlayer = file.DefaultPlayer
	}
	if file.DefaultStart != "" {
		d.DefaultStart = file.DefaultStart
	}

	if _, err := time.Parse(dateLayout, d.DefaultStart); err != nil {
		return Dashboard{}, fmt.Errorf("parse dashboard config: default_start: %w", err)
	}
	if d.DefaultSeasons > len(d.Seasons) {
		d.DefaultSeasons = len(d.Seasons)
	}
	return d, nil
}

// SelectedSeasons returns the seasons preselected in a fresh dashboard
func (d Dashboard) SelectedSeasons() []string {
	out := make([]string, d.DefaultSeasons)
	copy(out, d.Seasons[:d.DefaultSeasons])
	return out
}

// StartDate returns DefaultStart as a date
func (d Dashboard) StartDate() time.Time {
	t, _ := time.Parse(dateLayout, d.DefaultStart)
	return t
}
