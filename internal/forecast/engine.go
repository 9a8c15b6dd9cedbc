package forecast

import (
	"context"
	"errors"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Point is one observation in the two-column series handed to the engine.
type Point struct {
	Date  time.Time
	Value float64
}

// Prediction is one fitted or forecast row.
type Prediction struct {
	Date         time.Time
	Value        float64
	Lower        float64
	Upper        float64
	Trend        float64
	WeeklyEffect float64
}

// Config mirrors the tuning knobs exposed by the delegated forecasting
// model: seasonality switches and the changepoint sensitivity that controls
// how readily the trend follows shifts in the history.
type Config struct {
	YearlySeasonality     bool
	WeeklySeasonality     bool
	DailySeasonality      bool
	ChangepointPriorScale float64
}

// DefaultConfig returns the configuration every pipeline request uses:
// yearly and weekly seasonality on, daily off, changepoint sensitivity 0.05.
func DefaultConfig() Config {
	return Config{
		YearlySeasonality:     true,
		WeeklySeasonality:     true,
		DailySeasonality:      false,
		ChangepointPriorScale: 0.05,
	}
}

// Engine fits a daily series and predicts over the fitted history plus
// horizonDays consecutive days after the last observation. The output has
// one row per input observation, in input order, followed by the horizon.
type Engine interface {
	Forecast(ctx context.Context, series []Point, horizonDays int) ([]Prediction, error)
}

// SeasonalEngine is the in-process default engine: a least-squares linear
// trend with the slope shrunk by the changepoint prior, additive day-of-week
// offsets, and symmetric residual-based confidence bands.
type SeasonalEngine struct {
	cfg Config
}

// NewSeasonalEngine creates an engine with the given configuration.
func NewSeasonalEngine(cfg Config) *SeasonalEngine {
	return &SeasonalEngine{cfg: cfg}
}

// intervalZ widens the residual band to roughly an 80% interval, matching
// the upstream model's default interval width.
const intervalZ = 1.28

// minYearlySpanDays is the least history needed before a yearly component
// can be separated from the trend. With less, the yearly term is skipped.
const minYearlySpanDays = 730

// Forecast implements Engine.
func (e *SeasonalEngine) Forecast(ctx context.Context, series []Point, horizonDays int) ([]Prediction, error) {
	if len(series) == 0 {
		return nil, errors.New("cannot fit an empty series")
	}
	if horizonDays < 0 {
		return nil, errors.New("forecast horizon must not be negative")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	origin := series[0].Date
	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = p.Date.Sub(origin).Hours() / 24
		ys[i] = p.Value
	}

	var alpha, beta float64
	if len(series) == 1 || xs[0] == xs[len(xs)-1] {
		// A single date carries no trend information; fit a flat line.
		alpha = stat.Mean(ys, nil)
	} else {
		alpha, beta = stat.LinearRegression(xs, ys, nil, false)
		// Shrink the slope toward zero in proportion to the changepoint
		// prior, so a twitchy fit does not run away over the horizon.
		beta *= 1 / (1 + e.cfg.ChangepointPriorScale)
	}
	trendAt := func(x float64) float64 { return alpha + beta*x }

	weekly := e.weeklyOffsets(series, xs, trendAt)
	yearly := e.monthlyOffsets(series, xs, trendAt, weekly)

	fitted := func(p Point, x float64) (yhat, trend, weeklyEffect float64) {
		trend = trendAt(x)
		weeklyEffect = weekly[int(p.Date.Weekday())]
		yhat = trend + weeklyEffect + yearly[int(p.Date.Month())-1]
		return yhat, trend, weeklyEffect
	}

	residuals := make([]float64, len(series))
	for i, p := range series {
		yhat, _, _ := fitted(p, xs[i])
		residuals[i] = ys[i] - yhat
	}
	var sigma float64
	if len(residuals) > 1 {
		sigma = stat.StdDev(residuals, nil)
	}
	band := intervalZ * sigma

	out := make([]Prediction, 0, len(series)+horizonDays)
	for i, p := range series {
		yhat, trend, weeklyEffect := fitted(p, xs[i])
		out = append(out, Prediction{
			Date:         p.Date,
			Value:        yhat,
			Lower:        yhat - band,
			Upper:        yhat + band,
			Trend:        trend,
			WeeklyEffect: weeklyEffect,
		})
	}

	last := series[len(series)-1].Date
	for i := 1; i <= horizonDays; i++ {
		d := last.AddDate(0, 0, i)
		x := d.Sub(origin).Hours() / 24
		yhat, trend, weeklyEffect := fitted(Point{Date: d}, x)
		out = append(out, Prediction{
			Date:         d,
			Value:        yhat,
			Lower:        yhat - band,
			Upper:        yhat + band,
			Trend:        trend,
			WeeklyEffect: weeklyEffect,
		})
	}
	return out, nil
}

// weeklyOffsets returns the mean detrended residual per weekday, indexed by
// time.Weekday. All zeros when weekly seasonality is off.
func (e *SeasonalEngine) weeklyOffsets(series []Point, xs []float64, trendAt func(float64) float64) [7]float64 {
	var offsets [7]float64
	if !e.cfg.WeeklySeasonality {
		return offsets
	}
	var sums, counts [7]float64
	for i, p := range series {
		wd := int(p.Date.Weekday())
		sums[wd] += p.Value - trendAt(xs[i])
		counts[wd]++
	}
	for wd := range offsets {
		if counts[wd] > 0 {
			offsets[wd] = sums[wd] / counts[wd]
		}
	}
	return offsets
}

// monthlyOffsets approximates a yearly component with per-month offsets of
// the residual after trend and weekly effects. It needs at least two years
// of history; below that the component is all zeros.
func (e *SeasonalEngine) monthlyOffsets(series []Point, xs []float64, trendAt func(float64) float64, weekly [7]float64) [12]float64 {
	var offsets [12]float64
	if !e.cfg.YearlySeasonality {
		return offsets
	}
	span := series[len(series)-1].Date.Sub(series[0].Date).Hours() / 24
	if span < minYearlySpanDays {
		return offsets
	}
	var sums, counts [12]float64
	for i, p := range series {
		m := int(p.Date.Month()) - 1
		sums[m] += p.Value - trendAt(xs[i]) - weekly[int(p.Date.Weekday())]
		counts[m]++
	}
	for m := range offsets {
		if counts[m] > 0 {
			offsets[m] = sums[m] / counts[m]
		}
	}
	return offsets
}
