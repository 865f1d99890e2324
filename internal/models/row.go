package models

import "sort"

// Row is one holding exactly as it sits in the sheet: keys are the column
// headers verbatim, values are whatever the codec produced (float64, string, bool).
type Row map[string]any

func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with every key of fields laid over it.
func (r Row) Merge(fields Row) Row {
	out := r.Clone()
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// RowSet is the full ordered content of the backing sheet.
type RowSet struct {
	Columns []string
	Rows    []Row
}

func (s RowSet) Len() int {
	return len(s.Rows)
}

// Header returns the column order used when the set is written back: the
// known columns first, then keys introduced by rows, in the order the rows
// introduce them (sorted within a row).
func (s RowSet) Header() []string {
	seen := make(map[string]struct{}, len(s.Columns))
	out := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if _, ok := seen[col]; ok {
			continue
		}
		seen[col] = struct{}{}
		out = append(out, col)
	}
	for _, row := range s.Rows {
		var extra []string
		for key := range row {
			if _, ok := seen[key]; !ok {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}
