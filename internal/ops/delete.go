package ops

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Position int // 1-based
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Entry entry.Entry `json:"entry"` // the removed entry
}

// Delete resolves a history position to an entry and removes it. Resolution
// and removal share one transaction so a concurrent add cannot shift the
// ordering between the two steps.
func Delete(database *sql.DB, input DeleteInput) (*DeleteOutput, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback() //nolint:errcheck

	e, err := db.GetByPosition(tx, input.Position)
	if err != nil {
		return nil, err
	}

	deleted, err := db.DeleteByID(tx, e.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errors.NewNotFound(input.Position)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &DeleteOutput{Entry: *e}, nil
}
