package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/repository"
)

// ErrNotFound is returned when no row matches the requested symbol.
var ErrNotFound = errors.New("entry not found")

// PortfolioService applies create/update/delete against the row set.
// Every call loads the full set and every mutation saves the full set; two
// concurrent mutations race and the last writer wins.
type PortfolioService struct {
	Store  repository.Store
	Logger *zap.Logger
}

func (s *PortfolioService) load(ctx context.Context) (models.RowSet, error) {
	if s == nil || s.Store == nil {
		return models.RowSet{}, fmt.Errorf("%w: no store configured", repository.ErrStoreUnavailable)
	}
	return s.Store.LoadAll(ctx)
}

// List returns the raw rows in file order.
func (s *PortfolioService) List(ctx context.Context) ([]models.Row, error) {
	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if set.Rows == nil {
		return []models.Row{}, nil
	}
	return set.Rows, nil
}

// Holdings returns the normalized rows in file order.
func (s *PortfolioService) Holdings(ctx context.Context) ([]models.Holding, error) {
	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Holdings(set.Rows), nil
}

// Create appends fields as a new row. Fields are stored as given; nothing is
// defaulted and duplicate symbols are accepted.
func (s *PortfolioService) Create(ctx context.Context, fields models.Row) (models.Row, error) {
	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	entry := fields.Clone()
	set.Rows = append(set.Rows, entry)
	if err := s.Store.SaveAll(ctx, set); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("portfolio entry created",
			zap.String("symbol", normalize.RowSymbolKey(entry)),
			zap.Int("rows", set.Len()),
		)
	}
	return entry, nil
}

// Update merges fields over the row matching symbol. An empty field set
// returns the row unchanged without writing.
func (s *PortfolioService) Update(ctx context.Context, symbol string, fields models.Row) (models.Row, error) {
	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(set, symbol)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if len(fields) == 0 {
		return set.Rows[idx], nil
	}
	updated := set.Rows[idx].Merge(normalize.Align(fields, rowHeaders(set, idx)))
	set.Rows[idx] = updated
	if err := s.Store.SaveAll(ctx, set); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("portfolio entry updated",
			zap.String("symbol", normalize.SymbolKey(symbol)),
			zap.Int("fields", len(fields)),
		)
	}
	return updated, nil
}

// Delete removes the row matching symbol. A miss returns ErrNotFound and
// leaves the store untouched.
func (s *PortfolioService) Delete(ctx context.Context, symbol string) error {
	set, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(set, symbol)
	if idx < 0 {
		if s.Logger != nil {
			s.Logger.Warn("portfolio entry not found", zap.String("symbol", normalize.SymbolKey(symbol)))
		}
		return fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	set.Rows = append(set.Rows[:idx:idx], set.Rows[idx+1:]...)
	if err := s.Store.SaveAll(ctx, set); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("portfolio entry deleted",
			zap.String("symbol", normalize.SymbolKey(symbol)),
			zap.Int("rows", set.Len()),
		)
	}
	return nil
}

// rowHeaders lists the headers an update should write through: the row's
// own keys in read order, then the sheet columns.
func rowHeaders(set models.RowSet, idx int) []string {
	own := make([]string, 0, len(set.Rows[idx]))
	for k := range set.Rows[idx] {
		own = append(own, k)
	}
	sort.Strings(own)
	return append(own, set.Columns...)
}

// indexOf scans for the first row whose symbol matches, ignoring case and
// surrounding whitespace. Returns -1 on a miss.
func indexOf(set models.RowSet, symbol string) int {
	key := normalize.SymbolKey(symbol)
	for i, row := range set.Rows {
		if normalize.RowSymbolKey(row) == key {
			return i
		}
	}
	return -1
}
