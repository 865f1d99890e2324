package main

import (
	"github.com/spf13/cobra"

	"portfolio/internal/report"
	"portfolio/internal/service"
)

func newSummaryCmd(a *app) *cobra.Command {
	var currency string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the portfolio summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openStore(a.cfg, a.cfg.Store.Driver, a.logger)
			if err != nil {
				return err
			}
			defer b.close()

			svc := &service.AnalyticsService{Portfolio: &service.PortfolioService{Store: b.store, Logger: a.logger}}
			summary, err := svc.Summary(cmd.Context())
			if err != nil {
				return err
			}
			performers, err := svc.TopPerformers(cmd.Context())
			if err != nil {
				return err
			}
			if currency == "" {
				currency = a.cfg.App.Currency
			}
			return report.Summary(cmd.OutOrStdout(), summary, performers, currency)
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code for display (default app.currency)")
	return cmd
}
