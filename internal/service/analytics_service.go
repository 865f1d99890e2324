package service

import (
	"context"

	"portfolio/internal/analytics"
	"portfolio/internal/models"
)

// AnalyticsService reloads holdings on every call and hands them to the
// analytics package. It keeps no state between calls.
type AnalyticsService struct {
	Portfolio *PortfolioService
}

func (s *AnalyticsService) Holdings(ctx context.Context) ([]analytics.HoldingView, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Project(holdings), nil
}

func (s *AnalyticsService) Allocation(ctx context.Context) (analytics.Allocation, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return analytics.Allocation{}, err
	}
	return analytics.Allocate(holdings), nil
}

func (s *AnalyticsService) Summary(ctx context.Context) (analytics.Summary, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.BuildSummary(holdings), nil
}

func (s *AnalyticsService) SectorDistribution(ctx context.Context) (map[string]float64, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SectorDistribution(holdings), nil
}

func (s *AnalyticsService) MarketCapDistribution(ctx context.Context) (map[models.MarketCapBucket]float64, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.MarketCapDistribution(holdings), nil
}

func (s *AnalyticsService) Overview(ctx context.Context) (analytics.Overview, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return analytics.Overview{}, err
	}
	return analytics.Summarize(holdings), nil
}

func (s *AnalyticsService) TopPerformers(ctx context.Context) (analytics.Performers, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return analytics.Performers{}, err
	}
	return analytics.TopPerformers(holdings), nil
}

func (s *AnalyticsService) TotalValue(ctx context.Context) (float64, error) {
	holdings, err := s.Portfolio.Holdings(ctx)
	if err != nil {
		return 0, err
	}
	return analytics.TotalValue(holdings), nil
}
