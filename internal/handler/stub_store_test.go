package handler

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

var errDiskGone = fmt.Errorf("%w: open portfolio.xlsx: %w", repository.ErrStoreUnavailable, errors.New("no such file"))

type stubStore struct {
	set   models.RowSet
	fail  bool
	saves int
}

func (s *stubStore) LoadAll(ctx context.Context) (models.RowSet, error) {
	if s.fail {
		return models.RowSet{}, errDiskGone
	}
	out := models.RowSet{Columns: append([]string(nil), s.set.Columns...)}
	for _, row := range s.set.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out, nil
}

func (s *stubStore) SaveAll(ctx context.Context, set models.RowSet) error {
	if s.fail {
		return errDiskGone
	}
	s.saves++
	s.set = models.RowSet{Columns: set.Header(), Rows: set.Rows}
	return nil
}

func sampleStore() *stubStore {
	return &stubStore{set: models.RowSet{
		Columns: []string{"Symbol", "Name", "Value ₹", "Gain/Loss (₹)", "Investment ₹", "Sector", "Market Cap"},
		Rows: []models.Row{
			{"Symbol": "AAA", "Name": "Alpha", "Value ₹": 100.0, "Gain/Loss (₹)": 10.0, "Investment ₹": 90.0, "Sector": "Tech", "Market Cap": "Large Cap"},
			{"Symbol": "BBB", "Name": "Beta", "Value ₹": 200.0, "Gain/Loss (₹)": -20.0, "Investment ₹": 220.0, "Sector": "Tech", "Market Cap": "Mid Cap"},
		},
	}}
}
