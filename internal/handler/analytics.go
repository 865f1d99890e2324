package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
	Logger  *zap.Logger
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	g := r.Group("/api/portfolio")
	g.GET("/holdings", h.holdings)
	g.GET("/allocation", h.allocation)
	g.GET("/performance", h.performance)
	g.GET("/summary", h.summary)

	a := g.Group("/analytics")
	a.GET("/sector-distribution", h.sectorDistribution)
	a.GET("/marketcap-distribution", h.marketCapDistribution)
	a.GET("/overview", h.overview)
	a.GET("/top-performers", h.topPerformers)
	a.GET("/total-value", h.totalValue)
}

// @Summary Holdings projection
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.HoldingView
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/holdings [get]
func (h *AnalyticsHandler) holdings(c *gin.Context) {
	out, err := h.Service.Holdings(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch holdings.", err)
		return
	}
	Ok(c, out)
}

// @Summary Sector and market-cap allocation
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Allocation
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/allocation [get]
func (h *AnalyticsHandler) allocation(c *gin.Context) {
	out, err := h.Service.Allocation(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch allocation.", err)
		return
	}
	Ok(c, out)
}

// @Summary Benchmark comparison (static)
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Performance
// @Router /api/portfolio/performance [get]
func (h *AnalyticsHandler) performance(c *gin.Context) {
	Ok(c, service.StaticPerformance())
}

// @Summary Portfolio summary
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/summary [get]
func (h *AnalyticsHandler) summary(c *gin.Context) {
	out, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch summary.", err)
		return
	}
	Ok(c, out)
}

// @Summary Value per sector
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/analytics/sector-distribution [get]
func (h *AnalyticsHandler) sectorDistribution(c *gin.Context) {
	out, err := h.Service.SectorDistribution(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to calculate sector distribution.", err)
		return
	}
	Ok(c, gin.H{"sectors": out})
}

// @Summary Value per market-cap bucket
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/analytics/marketcap-distribution [get]
func (h *AnalyticsHandler) marketCapDistribution(c *gin.Context) {
	out, err := h.Service.MarketCapDistribution(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to calculate market cap distribution.", err)
		return
	}
	Ok(c, gin.H{"marketCap": out})
}

// @Summary Portfolio overview
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Overview
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/analytics/overview [get]
func (h *AnalyticsHandler) overview(c *gin.Context) {
	out, err := h.Service.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to calculate overview.", err)
		return
	}
	Ok(c, out)
}

// @Summary Best and worst holdings by absolute gain
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Performers
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/analytics/top-performers [get]
func (h *AnalyticsHandler) topPerformers(c *gin.Context) {
	out, err := h.Service.TopPerformers(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to calculate top performers.", err)
		return
	}
	Ok(c, out)
}

// @Summary Value plus gain/loss
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errorResponse
// @Router /api/portfolio/analytics/total-value [get]
func (h *AnalyticsHandler) totalValue(c *gin.Context) {
	out, err := h.Service.TotalValue(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to calculate analytics.", err)
		return
	}
	Ok(c, gin.H{"totalValue": out})
}

func (h *AnalyticsHandler) fail(c *gin.Context, message string, err error) {
	if h.Logger != nil {
		h.Logger.Error(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	Error(c, http.StatusInternalServerError, message, err)
}
