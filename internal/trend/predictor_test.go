package trend

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fortuna/courtside/internal/gamelog"
)

func games(start time.Time, points ...int) gamelog.GameLog {
	out := make(gamelog.GameLog, len(points))
	for i, p := range points {
		out[i] = gamelog.GameRecord{
			GameDate: start.AddDate(0, 0, 2*i),
			Points:   p,
			Rebounds: 5,
			Assists:  i,
		}
	}
	return out
}

func reversed(log gamelog.GameLog) gamelog.GameLog {
	out := make(gamelog.GameLog, len(log))
	for i, r := range log {
		out[len(log)-1-i] = r
	}
	return out
}

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPredictNext_LinearSequence(t *testing.T) {
	log := games(jan1, 10, 12, 14, 16, 18)

	got, err := PredictNext(log, gamelog.StatPoints)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if got.Value != 22.0 {
		t.Errorf("Value = %v; want 22.0", got.Value)
	}
	if got.EvaluatedAt != 6 {
		t.Errorf("EvaluatedAt = %d; want 6", got.EvaluatedAt)
	}
	if math.Abs(got.Slope-2) > 1e-9 || math.Abs(got.Intercept-10) > 1e-9 {
		t.Errorf("fit = %v + %vx; want 10 + 2x", got.Intercept, got.Slope)
	}
	if got.RSquared == nil || math.Abs(*got.RSquared-1) > 1e-9 {
		t.Errorf("RSquared = %v; want 1", got.RSquared)
	}
}

func TestPredictNext_SortsNewestFirstInput(t *testing.T) {
	log := reversed(games(jan1, 10, 12, 14, 16, 18))

	got, err := PredictNext(log, gamelog.StatPoints)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if got.Value != 22.0 {
		t.Errorf("Value = %v; want 22.0 regardless of input order", got.Value)
	}
	if log[0].Points != 18 {
		t.Error("input slice was reordered")
	}
}

func TestPredictNext_Rounding(t *testing.T) {
	// y = 20, 21, 23: slope 1.5, intercept 19.8333; at x=4 -> 25.8333
	got, err := PredictNext(games(jan1, 20, 21, 23), gamelog.StatPoints)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if got.Value != 25.8 {
		t.Errorf("Value = %v; want 25.8", got.Value)
	}
}

func TestPredictNext_OtherStats(t *testing.T) {
	log := games(jan1, 10, 10, 10, 10)

	reb, err := PredictNext(log, gamelog.StatRebounds)
	if err != nil || reb.Value != 5 {
		t.Errorf("REB = %+v, %v; want 5", reb, err)
	}
	// assists = 0,1,2,3 -> evaluated at 5
	ast, err := PredictNext(log, gamelog.StatAssists)
	if err != nil || ast.Value != 5 {
		t.Errorf("AST = %+v, %v; want 5", ast, err)
	}
	// PRA = 15,16,17,18 -> 20 at x=5
	pra, err := PredictNext(log, gamelog.StatPRA)
	if err != nil || pra.Value != 20 {
		t.Errorf("PRA = %+v, %v; want 20", pra, err)
	}
}

func TestPredictNext_SingleGame(t *testing.T) {
	got, err := PredictNext(games(jan1, 27), gamelog.StatPoints)
	if err != nil {
		t.Fatalf("PredictNext: %v", err)
	}
	if got.Value != 27 || got.Slope != 0 {
		t.Errorf("got %+v; want flat 27", got)
	}
	if got.RSquared != nil {
		t.Errorf("RSquared = %v; want nil for one game", *got.RSquared)
	}
}

func TestPredictNext_Empty(t *testing.T) {
	if _, err := PredictNext(nil, gamelog.StatPoints); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v; want ErrUnavailable", err)
	}
	if _, err := PredictNext(gamelog.GameLog{}, gamelog.StatPoints); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v; want ErrUnavailable", err)
	}
}
