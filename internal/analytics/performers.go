package analytics

import (
	"portfolio/internal/models"
)

type PerformerView struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	GainPercent float64 `json:"gainPercent"`
}

type Summary struct {
	TotalValue           float64        `json:"totalValue"`
	TotalInvested        float64        `json:"totalInvested"`
	TotalGainLoss        float64        `json:"totalGainLoss"`
	TotalGainLossPercent float64        `json:"totalGainLossPercent"`
	Holdings             int            `json:"holdings"`
	TopPerformer         *PerformerView `json:"topPerformer"`
	WorstPerformer       *PerformerView `json:"worstPerformer"`
	DiversificationScore float64        `json:"diversificationScore"`
	RiskLevel            RiskLevel      `json:"riskLevel"`
}

// BuildSummary combines the totals with percent-ranked leaders and the
// summary diversification score.
func BuildSummary(holdings []models.Holding) Summary {
	t := sum(holdings)
	score, level := SummaryRisk(holdings)
	out := Summary{
		TotalValue:           t.value.InexactFloat64(),
		TotalInvested:        t.invested.InexactFloat64(),
		TotalGainLoss:        t.gainLoss.InexactFloat64(),
		TotalGainLossPercent: percentOf(t.gainLoss, t.invested, 2),
		Holdings:             len(holdings),
		DiversificationScore: score,
		RiskLevel:            level,
	}
	best, worst := rank(holdings, func(h models.Holding) float64 { return h.GainLossPercent })
	if best >= 0 {
		out.TopPerformer = performerView(holdings[best])
		out.WorstPerformer = performerView(holdings[worst])
	}
	return out
}

func performerView(h models.Holding) *PerformerView {
	return &PerformerView{Symbol: h.Symbol, Name: h.Name, GainPercent: h.GainLossPercent}
}

type Performers struct {
	Best            *models.Holding `json:"best"`
	Worst           *models.Holding `json:"worst"`
	Diversification string          `json:"diversification,omitempty"`
	Risk            RiskLevel       `json:"risk,omitempty"`
}

// TopPerformers ranks by absolute GainLoss and returns the full holdings.
// An empty portfolio yields only null best and worst.
func TopPerformers(holdings []models.Holding) Performers {
	best, worst := rank(holdings, func(h models.Holding) float64 { return h.GainLoss })
	if best < 0 {
		return Performers{}
	}
	b, w := holdings[best], holdings[worst]
	ratio, level := PerformersRisk(holdings)
	return Performers{
		Best:            &b,
		Worst:           &w,
		Diversification: ratio,
		Risk:            level,
	}
}

// rank returns the indexes of the max and min key. Comparisons are strict,
// so on ties the first holding seen keeps its place. Both are -1 when empty.
func rank(holdings []models.Holding, key func(models.Holding) float64) (int, int) {
	if len(holdings) == 0 {
		return -1, -1
	}
	best, worst := 0, 0
	for i := 1; i < len(holdings); i++ {
		k := key(holdings[i])
		if k > key(holdings[best]) {
			best = i
		}
		if k < key(holdings[worst]) {
			worst = i
		}
	}
	return best, worst
}
