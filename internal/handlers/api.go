package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/models"
	"github.com/archit2501/flavormetrics-restaurant-analytics/internal/services"
)

// serviceName is returned by the health endpoint.
const serviceName = "FlavorMetrics Analytics Service"

// APIHandler handles all API requests
type APIHandler struct {
	forecastService  *services.ForecastService
	churnService     *services.ChurnService
	menuService      *services.MenuService
	sentimentService *services.SentimentService
	staffingService  *services.StaffingService
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(
	forecastService *services.ForecastService,
	churnService *services.ChurnService,
	menuService *services.MenuService,
	sentimentService *services.SentimentService,
	staffingService *services.StaffingService,
) *APIHandler {
	return &APIHandler{
		forecastService:  forecastService,
		churnService:     churnService,
		menuService:      menuService,
		sentimentService: sentimentService,
		staffingService:  staffingService,
	}
}

// SetupRoutes configures all API routes
func (h *APIHandler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api/ml")
	{
		api.POST("/demand-forecast", h.ForecastDemand)
		api.POST("/churn-prediction", h.PredictChurn)
		api.POST("/menu-optimization", h.OptimizeMenu)
		api.POST("/sentiment-analysis", h.AnalyzeSentiment)
		api.POST("/staff-optimization", h.OptimizeStaffing)
	}
}

// HealthCheck reports liveness with the current timestamp.
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ForecastDemand handles demand forecast requests.
func (h *APIHandler) ForecastDemand(c *gin.Context) {
	var req models.DemandForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.forecastService.Forecast(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, "demand forecast", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PredictChurn handles churn scoring requests.
func (h *APIHandler) PredictChurn(c *gin.Context) {
	var req models.ChurnPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.churnService.Predict(req)
	if err != nil {
		h.renderError(c, "churn prediction", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OptimizeMenu handles menu classification requests.
func (h *APIHandler) OptimizeMenu(c *gin.Context) {
	var req models.MenuOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.menuService.Optimize(req)
	if err != nil {
		h.renderError(c, "menu optimization", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnalyzeSentiment handles review sentiment requests.
func (h *APIHandler) AnalyzeSentiment(c *gin.Context) {
	var req models.SentimentAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sentimentService.Analyze(req)
	if err != nil {
		h.renderError(c, "sentiment analysis", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OptimizeStaffing handles staffing plan requests.
func (h *APIHandler) OptimizeStaffing(c *gin.Context) {
	var req models.StaffOptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.staffingService.Optimize(req)
	if err != nil {
		h.renderError(c, "staff optimization", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// renderError maps pipeline fault kinds to HTTP status codes: validation
// faults are client errors, everything else is a server fault with the
// error text as the message.
func (h *APIHandler) renderError(c *gin.Context, pipeline string, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	log.Printf("Error in %s pipeline: %v", pipeline, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
