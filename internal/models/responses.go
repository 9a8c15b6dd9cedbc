package models

// ForecastPoint is one forecast day. Day of week is Monday=0 through
// Sunday=6. ExpectedCovers and ConfidenceLow are clamped at zero; the
// upper bound is reported as fitted.
type ForecastPoint struct {
	Date           string  `json:"date"`
	DayOfWeek      int     `json:"day_of_week"`
	ExpectedCovers int     `json:"expected_covers"`
	ConfidenceLow  int     `json:"confidence_low"`
	ConfidenceHigh int     `json:"confidence_high"`
	Trend          float64 `json:"trend"`
	WeeklyEffect   float64 `json:"weekly_effect"`
}

// ConfidenceIntervals aggregates the per-day bounds as plain sums over the
// forecast window.
type ConfidenceIntervals struct {
	LowerBound int `json:"lower_bound"`
	UpperBound int `json:"upper_bound"`
	Mean       int `json:"mean"`
}

// ForecastFactors is explanatory metadata returned alongside the forecast.
// The weekly pattern is a fixed heuristic table, independent of the fitted
// weekly effect.
type ForecastFactors struct {
	WeeklyPattern      map[string]float64 `json:"weekly_pattern"`
	AvgRevenuePerCover float64            `json:"avg_revenue_per_cover"`
}

// DemandForecastResponse is the forecast pipeline output.
type DemandForecastResponse struct {
	Forecasts           []ForecastPoint     `json:"forecasts"`
	ConfidenceIntervals ConfidenceIntervals `json:"confidence_intervals"`
	Factors             ForecastFactors     `json:"factors"`
}

// ChurnFactors breaks a churn score into its RFM components.
type ChurnFactors struct {
	RecencyImpact   float64 `json:"recency_impact"`
	FrequencyImpact float64 `json:"frequency_impact"`
	MonetaryImpact  float64 `json:"monetary_impact"`
}

// ChurnPrediction is the scored result for one customer.
type ChurnPrediction struct {
	CustomerID             string       `json:"customer_id"`
	ChurnProbability       float64      `json:"churn_probability"`
	RiskLevel              string       `json:"risk_level"`
	Factors                ChurnFactors `json:"factors"`
	RetentionSuggestions   []string     `json:"retention_suggestions"`
	EstimatedLifetimeValue float64      `json:"estimated_lifetime_value"`
}

// RiskSummary tallies customers per risk bucket.
type RiskSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ChurnPredictionResponse is the churn pipeline output.
type ChurnPredictionResponse struct {
	Predictions []ChurnPrediction `json:"predictions"`
	RiskSummary RiskSummary       `json:"risk_summary"`
}

// MenuRecommendation is the classification and pricing advice for one item.
// ProfitMargin and the indices are relative to the submitted batch.
type MenuRecommendation struct {
	ItemID               string  `json:"item_id"`
	ItemName             string  `json:"item_name"`
	CurrentPrice         float64 `json:"current_price"`
	CurrentCost          float64 `json:"current_cost"`
	ProfitMargin         float64 `json:"profit_margin"`
	PopularityIndex      float64 `json:"popularity_index"`
	ProfitabilityIndex   float64 `json:"profitability_index"`
	Classification       string  `json:"classification"`
	RecommendedAction    string  `json:"recommended_action"`
	SuggestedPrice       float64 `json:"suggested_price"`
	ExpectedProfitChange float64 `json:"expected_profit_change"`
}

// MenuInsights summarizes a classified batch.
type MenuInsights struct {
	TotalItems      int                  `json:"total_items"`
	Target          string               `json:"target"`
	Stars           []string             `json:"stars"`
	Plowhorses      []string             `json:"plowhorses"`
	Puzzles         []string             `json:"puzzles"`
	Dogs            []string             `json:"dogs"`
	AvgProfitMargin float64              `json:"avg_profit_margin"`
	TopPerformers   []MenuRecommendation `json:"top_performers"`
	NeedsAttention  []MenuRecommendation `json:"needs_attention"`
}

// MenuOptimizationResponse is the menu pipeline output.
type MenuOptimizationResponse struct {
	Recommendations []MenuRecommendation `json:"recommendations"`
	Insights        MenuInsights         `json:"insights"`
}

// AnalyzedReview is the scored result for one review. Text longer than 200
// characters is truncated with an ellipsis marker.
type AnalyzedReview struct {
	ReviewID        string             `json:"review_id"`
	Text            string             `json:"text"`
	Sentiment       string             `json:"sentiment"`
	SentimentScore  float64            `json:"sentiment_score"`
	PositiveScore   float64            `json:"positive_score"`
	NegativeScore   float64            `json:"negative_score"`
	NeutralScore    float64            `json:"neutral_score"`
	AspectsDetected map[string]float64 `json:"aspects_detected"`
}

// OverallSentiment summarizes the whole review batch.
type OverallSentiment struct {
	AverageScore  float64 `json:"average_score"`
	Label         string  `json:"label"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	TotalReviews  int     `json:"total_reviews"`
}

// KeyTheme is one aspect's aggregate, ranked by mention count.
type KeyTheme struct {
	Aspect         string  `json:"aspect"`
	MentionCount   int     `json:"mention_count"`
	AvgSentiment   float64 `json:"avg_sentiment"`
	SentimentLabel string  `json:"sentiment_label"`
}

// SentimentAnalysisResponse is the sentiment pipeline output.
type SentimentAnalysisResponse struct {
	AnalyzedReviews  []AnalyzedReview `json:"analyzed_reviews"`
	OverallSentiment OverallSentiment `json:"overall_sentiment"`
	KeyThemes        []KeyTheme       `json:"key_themes"`
}

// HourlyStaffing is the plan for one service hour.
type HourlyStaffing struct {
	Hour           int            `json:"hour"`
	Time           string         `json:"time"`
	ExpectedCovers int            `json:"expected_covers"`
	DemandLevel    string         `json:"demand_level"`
	StaffNeeded    map[string]int `json:"staff_needed"`
}

// ExpectedDemand describes the demand outlook for the target date.
type ExpectedDemand struct {
	Date                string   `json:"date"`
	DayOfWeek           string   `json:"day_of_week"`
	TotalExpectedCovers int      `json:"total_expected_covers"`
	PeakHours           []string `json:"peak_hours"`
	DemandMultiplier    float64  `json:"demand_multiplier"`
}

// CoverageAnalysis rolls the schedule up into labor totals.
type CoverageAnalysis struct {
	TotalStaffHoursNeeded map[string]int `json:"total_staff_hours_needed"`
	EstimatedLaborCost    float64        `json:"estimated_labor_cost"`
	CoversPerLaborHour    float64        `json:"covers_per_labor_hour"`
}

// StaffOptimizationResponse is the staffing pipeline output.
type StaffOptimizationResponse struct {
	RecommendedSchedule []HourlyStaffing `json:"recommended_schedule"`
	ExpectedDemand      ExpectedDemand   `json:"expected_demand"`
	CoverageAnalysis    CoverageAnalysis `json:"coverage_analysis"`
}
