package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finsense/internal/errors"
	"finsense/internal/services"
)

// trendWindow bounds for the days query parameter.
const (
	defaultTrendDays = 7
	maxTrendDays     = 90
)

// AnalyticsHandler handles derived-view requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetTrends handles the per-day trend series.
// @Summary     Get spending trends
// @Description Get the gap-filled per-day income/expense series for the trailing window
// @Tags        analytics
// @Produce     json
// @Param       days query int false "Window length in days (default 7, max 90)"
// @Success     200 {array} analytics.TrendPoint "Trend series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	days := defaultTrendDays
	if v := c.Query("days"); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil || days < 1 || days > maxTrendDays {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "days must be between 1 and 90"))
			return
		}
	}

	trends, err := h.analyticsService.Trends(userID, days, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trends": trends})
}

// GetInsights handles the rule-based insights.
// @Summary     Get insights
// @Description Evaluate the fixed spending rules against recent transactions
// @Tags        analytics
// @Produce     json
// @Success     200 {array} analytics.Insight "Insights"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/insights [get]
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	insights, err := h.analyticsService.Insights(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GetSummary handles overall totals and the category breakdown.
// @Summary     Get summary
// @Description Get income/expense totals and the per-category expense breakdown
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.SummaryResult "Summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.Summary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
