package gamelog

import (
	"fmt"
	"strings"
)

// Stat selects a per-game counting statistic
type Stat string

const (
	StatPoints   Stat = "PTS"
	StatRebounds Stat = "REB"
	StatAssists  Stat = "AST"
	StatPRA      Stat = "PRA"
)

// ParseStat accepts PTS, REB, AST or PRA in any case
func ParseStat(s string) (Stat, error) {
	switch Stat(strings.ToUpper(strings.TrimSpace(s))) {
	case StatPoints:
		return StatPoints, nil
	case StatRebounds:
		return StatRebounds, nil
	case StatAssists:
		return StatAssists, nil
	case StatPRA:
		return StatPRA, nil
	}
	return "", fmt.Errorf("unknown stat %q (want PTS, REB, AST or PRA)", s)
}

// Label returns a human-readable stat name
func (s Stat) Label() string {
	switch s {
	case StatPoints:
		return "Points (PTS)"
	case StatRebounds:
		return "Rebounds (REB)"
	case StatAssists:
		return "Assists (AST)"
	case StatPRA:
		return "Points + Rebounds + Assists (PRA)"
	}
	return string(s)
}

// Value extracts the stat from a record. PRA is computed from its parts so
// it does not depend on DeriveComposite having run.
func (s Stat) Value(r GameRecord) float64 {
	switch s {
	case StatPoints:
		return float64(r.Points)
	case StatRebounds:
		return float64(r.Rebounds)
	case StatAssists:
		return float64(r.Assists)
	case StatPRA:
		return float64(r.Points + r.Rebounds + r.Assists)
	}
	return 0
}

// Values extracts the stat for every record, in log order
func (s Stat) Values(log GameLog) []float64 {
	out := make([]float64, len(log))
	for i, r := range log {
		out[i] = s.Value(r)
	}
	return out
}
