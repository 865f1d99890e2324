package gormrepository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

const layoutID = 1

// Store keeps the row set in SQL while preserving whole-set semantics:
// SaveAll replaces every row inside one transaction.
type Store struct {
	db        *gorm.DB
	batchSize int
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, batchSize: 200}
}

func (s *Store) LoadAll(ctx context.Context) (models.RowSet, error) {
	if s == nil || s.db == nil {
		return models.RowSet{}, fmt.Errorf("%w: db missing", repository.ErrStoreUnavailable)
	}
	var set models.RowSet

	var layout models.PortfolioLayout
	err := s.db.WithContext(ctx).Where("id = ?", layoutID).Take(&layout).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return models.RowSet{}, fmt.Errorf("%w: load layout: %w", repository.ErrStoreUnavailable, err)
	default:
		if len(layout.Columns) > 0 {
			if err := json.Unmarshal(layout.Columns, &set.Columns); err != nil {
				return models.RowSet{}, fmt.Errorf("%w: decode layout: %w", repository.ErrStoreUnavailable, err)
			}
		}
	}

	var items []models.PortfolioRow
	if err := s.db.WithContext(ctx).Order("position asc").Order("id asc").Find(&items).Error; err != nil {
		return models.RowSet{}, fmt.Errorf("%w: load rows: %w", repository.ErrStoreUnavailable, err)
	}
	for _, item := range items {
		row := make(models.Row, len(item.Fields))
		for k, v := range item.Fields {
			row[k] = plainValue(v)
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}

func (s *Store) SaveAll(ctx context.Context, set models.RowSet) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: db missing", repository.ErrStoreUnavailable)
	}
	columns, err := json.Marshal(set.Header())
	if err != nil {
		return fmt.Errorf("%w: encode layout: %w", repository.ErrStoreUnavailable, err)
	}
	items := make([]models.PortfolioRow, 0, len(set.Rows))
	for i, row := range set.Rows {
		fields := make(datatypes.JSONMap, len(row))
		for k, v := range row {
			fields[k] = v
		}
		items = append(items, models.PortfolioRow{Position: i, Fields: fields})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PortfolioRow{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.CreateInBatches(items, s.batchSize).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"columns", "updated_at"}),
		}).Create(&models.PortfolioLayout{ID: layoutID, Columns: datatypes.JSON(columns)}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: save rows: %w", repository.ErrStoreUnavailable, err)
	}
	return nil
}

// plainValue undoes the json.Number decoding JSONMap applies so rows read
// back from SQL carry float64 like rows read from a workbook.
func plainValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
