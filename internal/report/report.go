// Package report renders portfolio figures for terminal output.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"portfolio/internal/analytics"
)

// FormatMoney renders amount in the currency's display format, rounded to
// its minor unit. Unknown currency codes fall back to a plain two-decimal
// figure followed by the code.
func FormatMoney(amount float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return decimal.NewFromFloat(amount).StringFixed(2) + " " + currency
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func FormatPercent(pct float64) string {
	return decimal.NewFromFloat(pct).StringFixed(2) + "%"
}

// Summary writes the summary block followed by the top performers.
func Summary(w io.Writer, s analytics.Summary, p analytics.Performers, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Holdings", fmt.Sprintf("%d", s.Holdings)},
		{"Total value", FormatMoney(s.TotalValue, currency)},
		{"Total invested", FormatMoney(s.TotalInvested, currency)},
		{"Gain/Loss", FormatMoney(s.TotalGainLoss, currency)},
		{"Gain/Loss %", FormatPercent(s.TotalGainLossPercent)},
		{"Diversification", fmt.Sprintf("%.1f (%s risk)", s.DiversificationScore, s.RiskLevel)},
	}
	if s.TopPerformer != nil {
		rows = append(rows, [2]string{"Top performer", performer(s.TopPerformer)})
	}
	if s.WorstPerformer != nil {
		rows = append(rows, [2]string{"Worst performer", performer(s.WorstPerformer)})
	}
	if p.Best != nil {
		rows = append(rows, [2]string{"Largest gain", fmt.Sprintf("%s %s", p.Best.Symbol, FormatMoney(p.Best.GainLoss, currency))})
	}
	if p.Worst != nil {
		rows = append(rows, [2]string{"Largest loss", fmt.Sprintf("%s %s", p.Worst.Symbol, FormatMoney(p.Worst.GainLoss, currency))})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func performer(v *analytics.PerformerView) string {
	return fmt.Sprintf("%s (%s)", v.Symbol, FormatPercent(v.GainPercent*100))
}
