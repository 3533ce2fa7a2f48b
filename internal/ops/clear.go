package ops

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/db"
)

// ClearInput contains parameters for the Clear operation.
type ClearInput struct {
	KeepPinned bool // when true, pinned entries survive
}

// ClearOutput contains the result of the Clear operation.
type ClearOutput struct {
	Removed int64 `json:"removed"`
}

// Clear deletes history entries, sparing pinned ones unless the caller
// explicitly opts to clear everything.
func Clear(database *sql.DB, input ClearInput) (*ClearOutput, error) {
	removed, err := db.Clear(database, input.KeepPinned)
	if err != nil {
		return nil, err
	}
	return &ClearOutput{Removed: removed}, nil
}
