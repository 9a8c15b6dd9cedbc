package services

import (
	"context"
	"fmt"
	"time"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/forecast"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
)

const (
	defaultForecastDays    = 14
	defaultRevenuePerCover = 45.0
	dateLayout             = "2006-01-02"
)

// weeklyPattern is the fixed heuristic day-multiplier table exposed as
// explanatory metadata. It is independent of the fitted weekly effect and
// the two are returned side by side, unreconciled.
var weeklyPattern = map[string]float64{
	"monday":    0.7,
	"tuesday":   0.75,
	"wednesday": 0.8,
	"thursday":  0.85,
	"friday":    1.3,
	"saturday":  1.4,
	"sunday":    1.0,
}

// ForecastService orchestrates demand forecasting around a delegated
// forecasting engine: it prepares the history series, hands it off, and
// post-processes the engine output into a response.
type ForecastService struct {
	engine forecast.Engine
}

// NewForecastService creates a forecast service around the given engine.
func NewForecastService(engine forecast.Engine) *ForecastService {
	return &ForecastService{engine: engine}
}

// Forecast predicts covers for the requested horizon from historical data.
// An empty history is a validation fault; an engine failure or a malformed
// history date surfaces as a collaborator fault.
func (s *ForecastService) Forecast(ctx context.Context, req models.DemandForecastRequest) (*models.DemandForecastResponse, error) {
	if len(req.HistoricalData) == 0 {
		return nil, NewValidationError("historical data required")
	}

	// Only an omitted horizon takes the default; an explicit zero means
	// zero forecast points.
	days := defaultForecastDays
	if req.ForecastDays != nil {
		days = *req.ForecastDays
	}
	if days < 0 {
		return nil, NewValidationError("forecast days must not be negative")
	}

	// Two-column series, in request order. Duplicate dates are handed to
	// the engine as-is.
	series := make([]forecast.Point, 0, len(req.HistoricalData))
	for _, rec := range req.HistoricalData {
		d, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			return nil, &CollaboratorError{Collaborator: "forecast", Err: fmt.Errorf("parse history date %q: %w", rec.Date, err)}
		}
		if rec.Covers == nil {
			return nil, &CollaboratorError{Collaborator: "forecast", Err: fmt.Errorf("history record %s carries no covers", rec.Date)}
		}
		series = append(series, forecast.Point{Date: d, Value: *rec.Covers})
	}

	preds, err := s.engine.Forecast(ctx, series, days)
	if err != nil {
		return nil, &CollaboratorError{Collaborator: "forecast", Err: err}
	}
	if len(preds) < days {
		return nil, &CollaboratorError{Collaborator: "forecast", Err: fmt.Errorf("engine returned %d predictions, need %d", len(preds), days)}
	}

	// Keep only the trailing horizon, discarding the fitted history.
	horizon := preds[len(preds)-days:]

	points := make([]models.ForecastPoint, 0, len(horizon))
	var lowSum, highSum, meanSum int
	for _, p := range horizon {
		point := models.ForecastPoint{
			Date:           p.Date.Format(dateLayout),
			DayOfWeek:      mondayIndexed(p.Date.Weekday()),
			ExpectedCovers: max(0, int(p.Value)),
			ConfidenceLow:  max(0, int(p.Lower)),
			ConfidenceHigh: int(p.Upper),
			Trend:          p.Trend,
			WeeklyEffect:   p.WeeklyEffect,
		}
		lowSum += point.ConfidenceLow
		highSum += point.ConfidenceHigh
		meanSum += point.ExpectedCovers
		points = append(points, point)
	}

	return &models.DemandForecastResponse{
		Forecasts: points,
		ConfidenceIntervals: models.ConfidenceIntervals{
			LowerBound: lowSum,
			UpperBound: highSum,
			Mean:       meanSum,
		},
		Factors: models.ForecastFactors{
			WeeklyPattern:      weeklyPattern,
			AvgRevenuePerCover: round(revenuePerCover(req.HistoricalData), 2),
		},
	}, nil
}

// revenuePerCover is total revenue over total covers across the history,
// or the 45.0 default when no record carries revenue.
func revenuePerCover(history []models.HistoricalRecord) float64 {
	revenues := make([]float64, 0, len(history))
	covers := make([]float64, 0, len(history))
	for _, rec := range history {
		if rec.Covers != nil {
			covers = append(covers, *rec.Covers)
		}
		if rec.Revenue != nil {
			revenues = append(revenues, *rec.Revenue)
		}
	}
	if len(revenues) == 0 {
		return defaultRevenuePerCover
	}
	return safeRatio(sum(revenues), sum(covers))
}

// mondayIndexed converts time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
