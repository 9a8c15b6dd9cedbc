package models

// HistoricalRecord is one day of observed restaurant activity. Covers and
// Revenue are optional; an absent field is not a zero observation, and
// each consumer decides whether to skip the record or reject it.
type HistoricalRecord struct {
	Date    string   `json:"date" binding:"required"`
	Covers  *float64 `json:"covers,omitempty"`
	Revenue *float64 `json:"revenue,omitempty"`
}

// DemandForecastRequest asks for a covers forecast from historical activity.
// ForecastDays defaults to 14 when omitted.
type DemandForecastRequest struct {
	RestaurantID   string             `json:"restaurant_id"`
	HistoricalData []HistoricalRecord `json:"historical_data"`
	ForecastDays   *int               `json:"forecast_days,omitempty"`
	IncludeItems   bool               `json:"include_items"`
}

// Customer carries the RFM inputs for churn scoring. Missing fields fall
// back to: days_since_last_visit 90, visit_count 1, total_spent 0.
type Customer struct {
	ID                 string   `json:"id"`
	DaysSinceLastVisit *float64 `json:"days_since_last_visit,omitempty"`
	VisitCount         *float64 `json:"visit_count,omitempty"`
	TotalSpent         *float64 `json:"total_spent,omitempty"`
}

// ChurnPredictionRequest scores a batch of customers.
type ChurnPredictionRequest struct {
	Customers []Customer `json:"customers"`
}

// MenuItem is one menu entry with its economics.
type MenuItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Cost       float64 `json:"cost"`
	OrderCount float64 `json:"order_count"`
}

// MenuOptimizationRequest classifies a menu batch. Target defaults to
// "profit"; it is accepted and echoed back but does not change the
// classification algorithm.
type MenuOptimizationRequest struct {
	MenuItems []MenuItem `json:"menu_items"`
	Target    string     `json:"target" binding:"omitempty,oneof=profit popularity balance"`
}

// Review is one piece of customer feedback. The text is read from Comment
// first, falling back to Text.
type Review struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
	Text    string `json:"text"`
}

// SentimentAnalysisRequest scores a batch of reviews.
type SentimentAnalysisRequest struct {
	Reviews []Review `json:"reviews"`
}

// StaffMember is a roster entry. The optimizer accepts the roster but does
// not use it when computing the schedule.
type StaffMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// StaffOptimizationRequest plans staffing for a single calendar date.
type StaffOptimizationRequest struct {
	HistoricalOrders []HistoricalRecord `json:"historical_orders"`
	StaffData        []StaffMember      `json:"staff_data"`
	TargetDate       string             `json:"target_date" binding:"required"`
}
