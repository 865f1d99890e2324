package repository

import (
	"context"
	"errors"

	"portfolio/internal/models"
)

// ErrStoreUnavailable wraps every failure to open, parse or write the backing store.
var ErrStoreUnavailable = errors.New("store unavailable")

// Store is the whole-set persistence contract. There is no partial update:
// callers load everything, change it in memory and save everything.
type Store interface {
	LoadAll(ctx context.Context) (models.RowSet, error)
	SaveAll(ctx context.Context, set models.RowSet) error
}
