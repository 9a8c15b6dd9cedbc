package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/forecast"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/sentiment"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/services"
)

// stubAnalyzer implements sentiment.Analyzer with a fixed score.
type stubAnalyzer struct {
	compound float64
}

func (s *stubAnalyzer) PolarityScores(string) sentiment.Scores {
	return sentiment.Scores{Compound: s.compound, Neutral: 1}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := forecast.NewSeasonalEngine(forecast.DefaultConfig())
	handler := NewAPIHandler(
		services.NewForecastService(engine),
		services.NewChurnService(),
		services.NewMenuService(),
		services.NewSentimentService(&stubAnalyzer{compound: 0.6}),
		services.NewStaffingService(),
	)

	router := gin.New()
	handler.SetupRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHealthCheck returns the fixed status payload.
func TestHealthCheck(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, serviceName, body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

// TestChurnEndpoint: a valid batch round-trips with a consistent summary.
func TestChurnEndpoint(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/ml/churn-prediction", gin.H{
		"customers": []gin.H{
			{"id": "c-1", "days_since_last_visit": 120, "visit_count": 2, "total_spent": 80},
			{"id": "c-2", "days_since_last_visit": 5, "visit_count": 40, "total_spent": 3000},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChurnPredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Predictions, 2)
	total := resp.RiskSummary.High + resp.RiskSummary.Medium + resp.RiskSummary.Low
	assert.Equal(t, 2, total)
}

// TestForecastEndpointEmptyHistory: a validation fault maps to 400.
func TestForecastEndpointEmptyHistory(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/ml/demand-forecast", gin.H{
		"restaurant_id":   "r-1",
		"historical_data": []gin.H{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "historical data required")
}

// TestForecastEndpointHappyPath: daily history yields the requested number
// of points.
func TestForecastEndpointHappyPath(t *testing.T) {
	router := setupRouter()

	history := make([]gin.H, 28)
	for i := range history {
		history[i] = gin.H{"date": time2026Jan(i + 1), "covers": 80 + i%7*5}
	}
	w := postJSON(t, router, "/api/ml/demand-forecast", gin.H{
		"restaurant_id":   "r-1",
		"historical_data": history,
		"forecast_days":   7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DemandForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Forecasts, 7)
	for _, p := range resp.Forecasts {
		assert.GreaterOrEqual(t, p.ConfidenceHigh, p.ExpectedCovers)
		assert.GreaterOrEqual(t, p.ExpectedCovers, p.ConfidenceLow)
		assert.GreaterOrEqual(t, p.ConfidenceLow, 0)
	}
}

// TestMenuEndpointInvalidTarget: an unknown target fails binding with 400.
func TestMenuEndpointInvalidTarget(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/ml/menu-optimization", gin.H{
		"menu_items": []gin.H{{"id": "m-1", "name": "A", "price": 10, "cost": 4, "order_count": 5}},
		"target":     "chaos",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestSentimentEndpoint: analyzed reviews carry the stubbed polarity.
func TestSentimentEndpoint(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/ml/sentiment-analysis", gin.H{
		"reviews": []gin.H{{"id": "r-1", "comment": "The food was great"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SentimentAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.AnalyzedReviews, 1)
	assert.Equal(t, "positive", resp.AnalyzedReviews[0].Sentiment)
	assert.Equal(t, 1, resp.OverallSentiment.TotalReviews)
}

// TestStaffingEndpointBadDate: an unparsable target date maps to 400.
func TestStaffingEndpointBadDate(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/ml/staff-optimization", gin.H{
		"historical_orders": []gin.H{},
		"staff_data":        []gin.H{},
		"target_date":       "tomorrow",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid target date")
}

// TestMalformedJSONBody: undecodable payloads map to 400.
func TestMalformedJSONBody(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/ml/churn-prediction", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// time2026Jan formats a day in January 2026.
func time2026Jan(day int) string {
	return fmt.Sprintf("2026-01-%02d", day)
}
