package services

import (
	"math"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
)

// Defaults applied to missing customer fields.
const (
	defaultRecencyDays = 90.0
	defaultVisitCount  = 1.0
	defaultTotalSpent  = 0.0
)

// RFM normalization horizons and score weights.
const (
	recencyHorizonDays  = 180.0  // days since last visit beyond this saturate
	frequencySaturation = 50.0   // visits beyond this mean no churn signal
	monetarySaturation  = 2000.0 // spend beyond this means no churn signal

	wRecency   = 0.5
	wFrequency = 0.3
	wMonetary  = 0.2

	// The weighted raw score concentrates mid-range; a fixed-steepness
	// sigmoid recentered at 0.5 maps it into a sharper probability.
	logisticSteepness = 4.0

	highRiskThreshold   = 0.70
	mediumRiskThreshold = 0.40

	// Lifetime value assumes a fixed two-cycle retention horizon.
	lifetimeHorizon = 2.0
)

// Suggestion trigger thresholds. Triggers are independent, not exclusive.
const (
	reengageRecencyDays   = 60.0
	loyaltyVisitThreshold = 5.0
	upsellAOVThreshold    = 40.0
)

// ChurnService scores customers for churn risk from their RFM profile.
type ChurnService struct{}

// NewChurnService creates a new churn scorer.
func NewChurnService() *ChurnService {
	return &ChurnService{}
}

// Predict scores every customer in the batch. An empty batch is not an
// error; it yields empty predictions and a zeroed summary.
func (s *ChurnService) Predict(req models.ChurnPredictionRequest) (*models.ChurnPredictionResponse, error) {
	predictions := make([]models.ChurnPrediction, 0, len(req.Customers))
	var summary models.RiskSummary

	for _, customer := range req.Customers {
		recencyDays := valueOr(customer.DaysSinceLastVisit, defaultRecencyDays)
		frequency := valueOr(customer.VisitCount, defaultVisitCount)
		monetary := valueOr(customer.TotalSpent, defaultTotalSpent)
		avgOrderValue := 0.0
		if frequency > 0 {
			avgOrderValue = monetary / frequency
		}

		recencyScore := math.Min(recencyDays/recencyHorizonDays, 1.0)
		frequencyScore := math.Max(0, 1-frequency/frequencySaturation)
		monetaryScore := math.Max(0, 1-monetary/monetarySaturation)

		raw := recencyScore*wRecency + frequencyScore*wFrequency + monetaryScore*wMonetary
		probability := logistic(logisticSteepness * (raw - 0.5))

		riskLevel := "low"
		switch {
		case probability >= highRiskThreshold:
			riskLevel = "high"
			summary.High++
		case probability >= mediumRiskThreshold:
			riskLevel = "medium"
			summary.Medium++
		default:
			summary.Low++
		}

		suggestions := []string{}
		if recencyDays > reengageRecencyDays {
			suggestions = append(suggestions, "Send re-engagement email with special offer")
		}
		if frequency < loyaltyVisitThreshold {
			suggestions = append(suggestions, "Enroll in loyalty program")
		}
		if avgOrderValue < upsellAOVThreshold {
			suggestions = append(suggestions, "Upsell premium items on next visit")
		}

		predictions = append(predictions, models.ChurnPrediction{
			CustomerID:       customer.ID,
			ChurnProbability: round(probability, 3),
			RiskLevel:        riskLevel,
			Factors: models.ChurnFactors{
				RecencyImpact:   round(recencyScore, 3),
				FrequencyImpact: round(frequencyScore, 3),
				MonetaryImpact:  round(monetaryScore, 3),
			},
			RetentionSuggestions:   suggestions,
			EstimatedLifetimeValue: round(avgOrderValue*frequency*(1-probability)*lifetimeHorizon, 2),
		})
	}

	return &models.ChurnPredictionResponse{
		Predictions: predictions,
		RiskSummary: summary,
	}, nil
}

// logistic is the standard sigmoid.
func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// valueOr resolves an optional request field to its documented default.
func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
