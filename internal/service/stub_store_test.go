package service

import (
	"context"

	"portfolio/internal/models"
)

// memStore is a test-only repository.Store that records every save.
type memStore struct {
	set     models.RowSet
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) LoadAll(ctx context.Context) (models.RowSet, error) {
	if m.loadErr != nil {
		return models.RowSet{}, m.loadErr
	}
	out := models.RowSet{Columns: append([]string(nil), m.set.Columns...)}
	for _, row := range m.set.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out, nil
}

func (m *memStore) SaveAll(ctx context.Context, set models.RowSet) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.set = models.RowSet{Columns: set.Header()}
	for _, row := range set.Rows {
		m.set.Rows = append(m.set.Rows, row.Clone())
	}
	return nil
}

func seededStore() *memStore {
	return &memStore{set: models.RowSet{
		Columns: []string{"Symbol", "Name", "Value ₹", "Gain/Loss (₹)", "Investment ₹", "Sector", "Market Cap"},
		Rows: []models.Row{
			{"Symbol": "AAA", "Name": "Alpha", "Value ₹": 100.0, "Gain/Loss (₹)": 10.0, "Investment ₹": 90.0, "Sector": "Tech", "Market Cap": "Large Cap"},
			{"Symbol": "BBB", "Name": "Beta", "Value ₹": 200.0, "Gain/Loss (₹)": -20.0, "Investment ₹": 220.0, "Sector": "Tech", "Market Cap": "Mid Cap"},
		},
	}}
}
