package ops

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
)

// GetInput contains parameters for the Get operation.
type GetInput struct {
	Position int // 1-based, 1 = most recent
}

// GetOutput contains the result of the Get operation.
type GetOutput struct {
	Entry entry.Entry `json:"entry"`
}

// Get returns the entry at a 1-based history position. The position is
// recomputed from the current ordering on every call, so it is consistent
// with List but unstable across mutations.
func Get(database *sql.DB, input GetInput) (*GetOutput, error) {
	e, err := db.GetByPosition(database, input.Position)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Entry: *e}, nil
}
