package excelrepository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

const DefaultSheet = "Portfolio"

// Store keeps the portfolio in the first sheet of a single workbook.
// Reads take the first sheet whatever its name; writes replace the workbook
// with one sheet named Sheet.
type Store struct {
	Path  string
	Sheet string
}

func New(path, sheet string) *Store {
	if strings.TrimSpace(sheet) == "" {
		sheet = DefaultSheet
	}
	return &Store{Path: path, Sheet: sheet}
}

func (s *Store) LoadAll(ctx context.Context) (models.RowSet, error) {
	if err := ctx.Err(); err != nil {
		return models.RowSet{}, err
	}
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return models.RowSet{}, fmt.Errorf("%w: open %s: %w", repository.ErrStoreUnavailable, s.Path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.RowSet{}, fmt.Errorf("%w: %s has no sheets", repository.ErrStoreUnavailable, s.Path)
	}
	sheet := sheets[0]
	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.RowSet{}, fmt.Errorf("%w: read sheet %q: %w", repository.ErrStoreUnavailable, sheet, err)
	}
	if len(grid) == 0 {
		return models.RowSet{}, nil
	}

	header := columnNames(grid)
	set := models.RowSet{Columns: header}
	for r := 1; r < len(grid); r++ {
		row := models.Row{}
		for c, raw := range grid[r] {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return models.RowSet{}, fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
			}
			kind, err := f.GetCellType(sheet, cell)
			if err != nil {
				return models.RowSet{}, fmt.Errorf("%w: cell %s: %w", repository.ErrStoreUnavailable, cell, err)
			}
			row[header[c]] = decodeCell(kind, raw)
		}
		// Fully blank lines are not holdings.
		if len(row) == 0 {
			continue
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}

func (s *Store) SaveAll(ctx context.Context, set models.RowSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), s.Sheet); err != nil {
		return fmt.Errorf("%w: name sheet: %w", repository.ErrStoreUnavailable, err)
	}
	header := set.Header()
	if len(header) > 0 {
		cells := make([]any, len(header))
		for i, col := range header {
			cells[i] = col
		}
		if err := f.SetSheetRow(s.Sheet, "A1", &cells); err != nil {
			return fmt.Errorf("%w: write header: %w", repository.ErrStoreUnavailable, err)
		}
	}
	for i, row := range set.Rows {
		cells := make([]any, len(header))
		for c, col := range header {
			cells[c] = encodeCell(row[col])
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, err)
		}
		if err := f.SetSheetRow(s.Sheet, anchor, &cells); err != nil {
			return fmt.Errorf("%w: write row %d: %w", repository.ErrStoreUnavailable, i+1, err)
		}
	}
	return s.replace(f)
}

// replace writes the workbook next to the target and renames it over,
// so a failed write leaves the previous file in place.
func (s *Store) replace(f *excelize.File) error {
	dir, base := filepath.Split(s.Path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", repository.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}
	if err := f.Write(tmp); err != nil {
		cleanup()
		return fmt.Errorf("%w: write %s: %w", repository.ErrStoreUnavailable, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("%w: sync %s: %w", repository.ErrStoreUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", repository.ErrStoreUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", repository.ErrStoreUnavailable, s.Path, err)
	}
	return nil
}

// columnNames labels every column that holds data anywhere in the sheet.
// Blank headers become __EMPTY, __EMPTY_1, ... and repeated headers get a
// _N suffix, so a rewrite keeps every cell under a distinct key.
func columnNames(grid [][]string) []string {
	width := 0
	for _, line := range grid {
		width = max(width, len(line))
	}
	used := make(map[string]struct{}, width)
	out := make([]string, width)
	for c := range out {
		base := "__EMPTY"
		if c < len(grid[0]) && strings.TrimSpace(grid[0][c]) != "" {
			base = grid[0][c]
		}
		name := base
		for n := 1; ; n++ {
			if _, ok := used[name]; !ok {
				break
			}
			name = base + "_" + strconv.Itoa(n)
		}
		used[name] = struct{}{}
		out[c] = name
	}
	return out
}

func decodeCell(kind excelize.CellType, raw string) any {
	switch kind {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return raw
}

func encodeCell(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64:
		return val
	default:
		return fmt.Sprint(val)
	}
}
