package trend

import (
	"errors"
	"math"
	"sort"

	"github.com/fortuna/courtside/internal/gamelog"
	"gonum.org/v1/gonum/stat"
)

// ErrUnavailable is returned when there are no games to fit
var ErrUnavailable = errors.New("prediction unavailable: no games")

// Prediction is a linear trend extrapolated past the last game
type Prediction struct {
	Stat      gamelog.Stat `json:"stat"`
	Value     float64      `json:"value"`
	Games     int          `json:"games"`
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
	RSquared  *float64     `json:"r_squared,omitempty"`
	// EvaluatedAt is the zero-based game index the line was evaluated at.
	EvaluatedAt int `json:"evaluated_at"`
}

// PredictNext fits stat against game index over log in chronological order
// and evaluates the fitted line at index len(log)+1.
//
// The evaluation index is two steps past the last observed game (index
// len-1); dashboards built on this figure have always shown that value.
func PredictNext(log gamelog.GameLog, st gamelog.Stat) (Prediction, error) {
	if len(log) == 0 {
		return Prediction{}, ErrUnavailable
	}

	games := chronological(log)
	xs := make([]float64, len(games))
	for i := range games {
		xs[i] = float64(i)
	}
	ys := st.Values(games)

	intercept, slope := fit(xs, ys)
	at := len(games) + 1
	pred := Prediction{
		Stat:        st,
		Value:       round1(intercept + slope*float64(at)),
		Games:       len(games),
		Slope:       slope,
		Intercept:   intercept,
		EvaluatedAt: at,
	}
	if len(games) > 1 {
		if r2 := stat.RSquared(xs, ys, nil, intercept, slope); !math.IsNaN(r2) {
			pred.RSquared = &r2
		}
	}
	return pred, nil
}

// fit returns the least-squares intercept and slope. With fewer than two
// distinct x values the line is flat through the mean of y.
func fit(xs, ys []float64) (intercept, slope float64) {
	if len(xs) < 2 || stat.Variance(xs, nil) == 0 {
		return stat.Mean(ys, nil), 0
	}
	return stat.LinearRegression(xs, ys, nil, false)
}

// chronological returns a copy of log sorted oldest first. Ties keep their
// source order.
func chronological(log gamelog.GameLog) gamelog.GameLog {
	out := make(gamelog.GameLog, len(log))
	copy(out, log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GameDate.Before(out[j].GameDate)
	})
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
