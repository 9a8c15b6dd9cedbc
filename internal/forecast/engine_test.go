package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailySeries(from string, n int, value func(i int, d time.Time) float64) []Point {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		panic(err)
	}
	series := make([]Point, n)
	for i := range series {
		d := start.AddDate(0, 0, i)
		series[i] = Point{Date: d, Value: value(i, d)}
	}
	return series
}

// TestEngineOutputContract: one prediction per observation plus one per
// horizon day, with consecutive dates after the last observation.
func TestEngineOutputContract(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())
	series := dailySeries("2026-01-01", 28, func(i int, _ time.Time) float64 { return 100 + float64(i) })

	preds, err := engine.Forecast(context.Background(), series, 7)
	require.NoError(t, err)
	require.Len(t, preds, 35)

	last := series[len(series)-1].Date
	for i, p := range preds[28:] {
		assert.Equal(t, last.AddDate(0, 0, i+1), p.Date)
	}
}

// TestEngineBoundsOrdering: upper >= value >= lower for every prediction.
func TestEngineBoundsOrdering(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())
	series := dailySeries("2026-01-01", 60, func(i int, d time.Time) float64 {
		v := 80 + 0.5*float64(i)
		if d.Weekday() == time.Saturday {
			v += 30
		}
		return v
	})

	preds, err := engine.Forecast(context.Background(), series, 14)
	require.NoError(t, err)

	for i, p := range preds {
		assert.GreaterOrEqual(t, p.Upper, p.Value, "prediction %d", i)
		assert.GreaterOrEqual(t, p.Value, p.Lower, "prediction %d", i)
	}
}

// TestEngineConstantSeries: a flat series forecasts flat with a collapsed
// band.
func TestEngineConstantSeries(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())
	series := dailySeries("2026-01-01", 21, func(int, time.Time) float64 { return 50 })

	preds, err := engine.Forecast(context.Background(), series, 7)
	require.NoError(t, err)

	for _, p := range preds {
		assert.InDelta(t, 50, p.Value, 1e-6)
		assert.InDelta(t, 50, p.Lower, 1e-6)
		assert.InDelta(t, 50, p.Upper, 1e-6)
	}
}

// TestEngineWeeklySeasonality: a stable weekend bump shows up in the
// Saturday forecast and its weekly effect.
func TestEngineWeeklySeasonality(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())
	series := dailySeries("2026-01-01", 56, func(_ int, d time.Time) float64 {
		if d.Weekday() == time.Saturday {
			return 120
		}
		return 100
	})

	preds, err := engine.Forecast(context.Background(), series, 7)
	require.NoError(t, err)

	horizon := preds[len(preds)-7:]
	var saturday, monday Prediction
	for _, p := range horizon {
		switch p.Date.Weekday() {
		case time.Saturday:
			saturday = p
		case time.Monday:
			monday = p
		}
	}
	assert.InDelta(t, 120, saturday.Value, 5)
	assert.InDelta(t, 100, monday.Value, 5)
	assert.Greater(t, saturday.WeeklyEffect, monday.WeeklyEffect)
}

// TestEngineWeeklySeasonalityDisabled: with the switch off the weekly
// effect is zero everywhere.
func TestEngineWeeklySeasonalityDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeeklySeasonality = false
	engine := NewSeasonalEngine(cfg)

	series := dailySeries("2026-01-01", 28, func(_ int, d time.Time) float64 {
		if d.Weekday() == time.Saturday {
			return 120
		}
		return 100
	})

	preds, err := engine.Forecast(context.Background(), series, 7)
	require.NoError(t, err)
	for _, p := range preds {
		assert.Zero(t, p.WeeklyEffect)
	}
}

// TestEngineRejectsBadInput: empty series and negative horizons are errors.
func TestEngineRejectsBadInput(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())

	_, err := engine.Forecast(context.Background(), nil, 7)
	assert.Error(t, err)

	series := dailySeries("2026-01-01", 3, func(int, time.Time) float64 { return 10 })
	_, err = engine.Forecast(context.Background(), series, -1)
	assert.Error(t, err)
}

// TestEngineSinglePoint: one observation fits a flat line at that value.
func TestEngineSinglePoint(t *testing.T) {
	engine := NewSeasonalEngine(DefaultConfig())
	series := []Point{{Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Value: 42}}

	preds, err := engine.Forecast(context.Background(), series, 3)
	require.NoError(t, err)
	require.Len(t, preds, 4)
	for _, p := range preds {
		assert.InDelta(t, 42, p.Value, 1e-6)
	}
}
