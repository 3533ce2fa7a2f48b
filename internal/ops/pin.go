package ops

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/errors"
)

// PinInput contains parameters for the Pin and Unpin operations.
type PinInput struct {
	Position int // 1-based
}

// PinOutput contains the result of the Pin and Unpin operations.
type PinOutput struct {
	ID     int64 `json:"id"`
	Pinned bool  `json:"pinned"`
}

// Pin marks the entry at a history position as exempt from retention pruning
// and default clear. Pinning an already-pinned entry succeeds (idempotent).
func Pin(database *sql.DB, input PinInput) (*PinOutput, error) {
	return setPinned(database, input.Position, true)
}

// Unpin removes pin protection from the entry at a history position.
// Unpinning an unpinned entry succeeds (idempotent).
func Unpin(database *sql.DB, input PinInput) (*PinOutput, error) {
	return setPinned(database, input.Position, false)
}

// setPinned resolves position to id and flips the flag in one transaction.
// The entry's recency is deliberately untouched.
func setPinned(database *sql.DB, position int, pinned bool) (*PinOutput, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback() //nolint:errcheck

	e, err := db.GetByPosition(tx, position)
	if err != nil {
		return nil, err
	}

	ok, err := db.SetPinned(tx, e.ID, pinned)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NewNotFound(position)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &PinOutput{ID: e.ID, Pinned: pinned}, nil
}
