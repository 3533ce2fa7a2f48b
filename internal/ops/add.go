package ops

import (
	"database/sql"
	"strings"
	"time"

	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Content string // required, must not be empty after trimming
	Source  string // default: "clipboard"
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	ID      int64 `json:"id"`
	Deduped bool  `json:"deduped"` // true when an existing entry was refreshed
	Pruned  int64 `json:"pruned"`  // entries removed by retention pruning
}

// Add stores content in the history, or refreshes the matching entry's
// recency when identical content already exists. The duplicate check, the
// insert, and retention pruning run in a single transaction so a crash
// between steps cannot leave the ceiling violated or a half-applied add.
func Add(database *sql.DB, cfg *config.Config, input AddInput) (*AddOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewInvalidRequest("content is empty")
	}

	source := input.Source
	if source == "" {
		source = entry.SourceClipboard
	}

	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback() //nolint:errcheck

	e := entry.New(input.Content, source)

	// Duplicate path: refresh recency of the existing entry, no new row.
	dupID, err := db.FindDuplicate(tx, e.Fingerprint, e.Content)
	if err != nil {
		return nil, err
	}
	if dupID != 0 {
		if err := db.TouchEntry(tx, dupID, time.Now().UnixNano()); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, errors.NewInternal(err)
		}
		return &AddOutput{ID: dupID, Deduped: true}, nil
	}

	if err := db.InsertEntry(tx, e); err != nil {
		return nil, err
	}

	pruned, err := db.Prune(tx, cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &AddOutput{ID: e.ID, Pruned: pruned}, nil
}
