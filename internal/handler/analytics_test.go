package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
)

func TestHoldingsProjection(t *testing.T) {
	r := newRouter(sampleStore())
	w, _ := do(t, r, http.MethodGet, "/api/portfolio/holdings", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA", rows[0]["symbol"])
	assert.Equal(t, "Tech", rows[0]["sector"])
	assert.Equal(t, 100.0, rows[0]["value"])
	assert.Equal(t, -20.0, rows[1]["gainLoss"])
}

func TestSummaryScenario(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodGet, "/api/portfolio/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 300.0, body["totalValue"])
	assert.Equal(t, -10.0, body["totalGainLoss"])
	assert.Equal(t, 310.0, body["totalInvested"])
	assert.Equal(t, -3.23, body["totalGainLossPercent"])
	assert.Equal(t, 2.0, body["holdings"])
	assert.Equal(t, "High", body["riskLevel"])
}

func TestDistributions(t *testing.T) {
	r := newRouter(sampleStore())

	w, body := do(t, r, http.MethodGet, "/api/portfolio/analytics/sector-distribution", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"Tech": 300.0}, body["sectors"])

	w, body = do(t, r, http.MethodGet, "/api/portfolio/analytics/marketcap-distribution", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		string(models.MarketCapLarge):   100.0,
		string(models.MarketCapMid):     200.0,
		string(models.MarketCapSmall):   0.0,
		string(models.MarketCapUnknown): 0.0,
	}, body["marketCap"])
}

func TestAllocation(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodGet, "/api/portfolio/allocation", "")
	require.Equal(t, http.StatusOK, w.Code)

	bySector := body["bySector"].(map[string]any)
	assert.Equal(t, map[string]any{"value": 300.0, "percentage": 100.0}, bySector["Tech"])
	byCap := body["byMarketCap"].(map[string]any)
	assert.Equal(t, map[string]any{"value": 200.0, "percentage": 66.7}, byCap["Mid Cap"])
}

func TestOverviewAndTotalValue(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodGet, "/api/portfolio/analytics/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 300.0, body["totalValue"])
	assert.Equal(t, -10.0, body["totalPL"])

	w, body = do(t, r, http.MethodGet, "/api/portfolio/analytics/total-value", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"totalValue": 290.0}, body)
}

func TestTopPerformers(t *testing.T) {
	r := newRouter(sampleStore())
	w, body := do(t, r, http.MethodGet, "/api/portfolio/analytics/top-performers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AAA", body["best"].(map[string]any)["symbol"])
	assert.Equal(t, "BBB", body["worst"].(map[string]any)["symbol"])
	assert.Equal(t, "0.50", body["diversification"])
	assert.Equal(t, "High", body["risk"])
}

func TestTopPerformersEmpty(t *testing.T) {
	r := newRouter(&stubStore{})
	w, _ := do(t, r, http.MethodGet, "/api/portfolio/analytics/top-performers", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"best":null,"worst":null}`, w.Body.String())
}

func TestPerformanceIsStatic(t *testing.T) {
	r := newRouter(&stubStore{fail: true})
	w, body := do(t, r, http.MethodGet, "/api/portfolio/performance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["timeline"], 3)
	assert.Contains(t, body["returns"], "1year")
}

func TestAnalyticsStoreFailure(t *testing.T) {
	r := newRouter(&stubStore{fail: true})
	cases := map[string]string{
		"/api/portfolio/holdings":                         "Failed to fetch holdings.",
		"/api/portfolio/summary":                          "Failed to fetch summary.",
		"/api/portfolio/analytics/sector-distribution":    "Failed to calculate sector distribution.",
		"/api/portfolio/analytics/marketcap-distribution": "Failed to calculate market cap distribution.",
		"/api/portfolio/analytics/total-value":            "Failed to calculate analytics.",
	}
	for path, msg := range cases {
		w, body := do(t, r, http.MethodGet, path, "")
		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Equal(t, msg, body["error"], path)
		assert.NotEmpty(t, body["details"], path)
	}
}
