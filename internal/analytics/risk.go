package analytics

import (
	"github.com/shopspring/decimal"

	"portfolio/internal/models"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
)

// SummaryRisk scores diversification as round1(sectors * 10/rows) and maps
// the score to Low (> 9), Moderate (> 7) or High. Sectors are counted on
// the normalized label, so blank sectors count once as Unknown.
func SummaryRisk(holdings []models.Holding) (float64, RiskLevel) {
	sectors := map[string]struct{}{}
	for _, h := range holdings {
		sectors[h.Sector] = struct{}{}
	}
	multiplier := decimal.NewFromInt(1)
	if n := len(holdings); n > 0 {
		multiplier = decimal.NewFromInt(10).Div(decimal.NewFromInt(int64(n)))
	}
	score := decimal.NewFromInt(int64(len(sectors))).Mul(multiplier).Round(1).InexactFloat64()

	level := RiskHigh
	switch {
	case score > 9:
		level = RiskLow
	case score > 7:
		level = RiskModerate
	}
	return score, level
}

// PerformersRisk reports sectors/rows as a two-decimal string and grades
// risk on the raw counts: Low needs 10 rows and 5 sectors, Medium 5 and 3.
// Blank sectors are not counted.
func PerformersRisk(holdings []models.Holding) (string, RiskLevel) {
	sectors := map[string]struct{}{}
	for _, h := range holdings {
		if h.RawSector != "" {
			sectors[h.RawSector] = struct{}{}
		}
	}
	rows, count := len(holdings), len(sectors)
	ratio := decimal.Zero
	if rows > 0 {
		ratio = decimal.NewFromInt(int64(count)).Div(decimal.NewFromInt(int64(rows)))
	}

	level := RiskHigh
	switch {
	case rows >= 10 && count >= 5:
		level = RiskLow
	case rows >= 5 && count >= 3:
		level = RiskMedium
	}
	return ratio.StringFixed(2), level
}
