package ops

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Limit int // non-positive yields zero results
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []entry.Entry `json:"items"`
	Count int           `json:"count"`
}

// List returns up to Limit entries, most recently touched first.
func List(database *sql.DB, input ListInput) (*ListOutput, error) {
	items, err := db.ListRecent(database, input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: items, Count: len(items)}, nil
}
