// Package analytics derives every portfolio view from a normalized holding
// list. All functions are pure; callers reload holdings per request.
package analytics

import (
	"github.com/shopspring/decimal"

	"portfolio/internal/models"
)

var hundred = decimal.NewFromInt(100)

type HoldingView struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	AvgPrice        float64 `json:"avgPrice"`
	CurrentPrice    float64 `json:"currentPrice"`
	Sector          string  `json:"sector"`
	MarketCap       string  `json:"marketCap"`
	Value           float64 `json:"value"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
}

// Project maps holdings 1:1 to the display shape, keeping order.
func Project(holdings []models.Holding) []HoldingView {
	out := make([]HoldingView, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, HoldingView{
			Symbol:          h.Symbol,
			Name:            h.Name,
			Quantity:        h.Quantity,
			AvgPrice:        h.AvgPrice,
			CurrentPrice:    h.CurrentPrice,
			Sector:          h.Sector,
			MarketCap:       h.MarketCap,
			Value:           h.Value,
			GainLoss:        h.GainLoss,
			GainLossPercent: h.GainLossPercent,
		})
	}
	return out
}

// SectorDistribution sums Value per sector label.
func SectorDistribution(holdings []models.Holding) map[string]float64 {
	sums := map[string]decimal.Decimal{}
	for _, h := range holdings {
		sums[h.Sector] = sums[h.Sector].Add(dec(h.Value))
	}
	return floats(sums)
}

// MarketCapDistribution sums Value into the four canonical buckets. Every
// bucket is present, empty ones at 0.
func MarketCapDistribution(holdings []models.Holding) map[models.MarketCapBucket]float64 {
	sums := make(map[models.MarketCapBucket]decimal.Decimal, len(models.MarketCapBuckets))
	for _, b := range models.MarketCapBuckets {
		sums[b] = decimal.Zero
	}
	for _, h := range holdings {
		sums[h.CapBucket] = sums[h.CapBucket].Add(dec(h.Value))
	}
	out := make(map[models.MarketCapBucket]float64, len(sums))
	for k, v := range sums {
		out[k] = v.InexactFloat64()
	}
	return out
}

type AllocationSlice struct {
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type Allocation struct {
	BySector    map[string]AllocationSlice `json:"bySector"`
	ByMarketCap map[string]AllocationSlice `json:"byMarketCap"`
}

// Allocate groups Value by sector and by market-cap label and reports each
// group's share of the total, rounded to one decimal. Market cap is grouped
// on the label as written, not on the bucket.
func Allocate(holdings []models.Holding) Allocation {
	total := decimal.Zero
	bySector := map[string]decimal.Decimal{}
	byCap := map[string]decimal.Decimal{}
	for _, h := range holdings {
		v := dec(h.Value)
		total = total.Add(v)
		bySector[h.Sector] = bySector[h.Sector].Add(v)
		label := h.MarketCap
		if label == "" {
			label = string(models.MarketCapUnknown)
		}
		byCap[label] = byCap[label].Add(v)
	}
	return Allocation{
		BySector:    shares(bySector, total),
		ByMarketCap: shares(byCap, total),
	}
}

func shares(groups map[string]decimal.Decimal, total decimal.Decimal) map[string]AllocationSlice {
	out := make(map[string]AllocationSlice, len(groups))
	for k, v := range groups {
		out[k] = AllocationSlice{Value: v.InexactFloat64(), Percentage: percentOf(v, total, 1)}
	}
	return out
}

type Overview struct {
	TotalValue     float64 `json:"totalValue"`
	TotalPL        float64 `json:"totalPL"`
	TotalInvested  float64 `json:"totalInvested"`
	PerformancePct float64 `json:"performancePct"`
	Holdings       int     `json:"holdings"`
}

func Summarize(holdings []models.Holding) Overview {
	t := sum(holdings)
	perf := 0.0
	if !t.invested.IsZero() {
		perf = t.value.Sub(t.invested).Div(t.invested).Mul(hundred).InexactFloat64()
	}
	return Overview{
		TotalValue:     t.value.InexactFloat64(),
		TotalPL:        t.gainLoss.InexactFloat64(),
		TotalInvested:  t.invested.InexactFloat64(),
		PerformancePct: perf,
		Holdings:       len(holdings),
	}
}

// TotalValue is sum(Value) + sum(GainLoss). It is not the overview total.
func TotalValue(holdings []models.Holding) float64 {
	t := sum(holdings)
	return t.value.Add(t.gainLoss).InexactFloat64()
}

type totals struct {
	value    decimal.Decimal
	invested decimal.Decimal
	gainLoss decimal.Decimal
}

func sum(holdings []models.Holding) totals {
	var t totals
	for _, h := range holdings {
		t.value = t.value.Add(dec(h.Value))
		t.invested = t.invested.Add(dec(h.Investment))
		t.gainLoss = t.gainLoss.Add(dec(h.GainLoss))
	}
	return t
}

// percentOf returns part/total*100 rounded to places, 0 when total is 0.
func percentOf(part, total decimal.Decimal, places int32) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).Round(places).InexactFloat64()
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func floats(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}
