package db

import (
	"database/sql"

	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// recentOrder is the canonical history ordering: most recently touched first,
// ties broken by highest id (most recently inserted wins). Every position
// query must use it so positions stay consistent across operations.
const recentOrder = "ORDER BY last_touched_at DESC, id DESC"

// DBTX is satisfied by both *sql.DB and *sql.Tx so single-statement helpers
// can run standalone or inside a transaction.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

const entryColumns = "id, content, fingerprint, last_touched_at, source, char_count, word_count, pinned"

// InsertEntry stores a new entry and fills in its assigned ID.
func InsertEntry(q DBTX, e *entry.Entry) error {
	result, err := q.Exec(`
		INSERT INTO entries (content, fingerprint, last_touched_at, source, char_count, word_count, pinned)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.Content, e.Fingerprint, e.LastTouchedAt, e.Source, e.CharCount, e.WordCount, boolToInt(e.Pinned))
	if err != nil {
		return errors.NewInternal(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewInternal(err)
	}
	e.ID = id

	return nil
}

// FindDuplicate returns the id of a live entry whose fingerprint AND full
// content match, or 0 if none exists. Comparing content as well guards
// against hash collisions.
func FindDuplicate(q DBTX, fingerprint, content string) (int64, error) {
	var id int64
	err := q.QueryRow(`
		SELECT id FROM entries
		WHERE fingerprint = ? AND content = ?
		LIMIT 1
	`, fingerprint, content).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return id, nil
}

// TouchEntry refreshes an entry's last_touched_at, moving it to the front of
// the history ordering.
func TouchEntry(q DBTX, id int64, touchedAt int64) error {
	if _, err := q.Exec("UPDATE entries SET last_touched_at = ? WHERE id = ?", touchedAt, id); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// Prune deletes the oldest non-pinned entries beyond the retention ceiling.
// Pinned entries are never touched. Returns the number of rows removed.
func Prune(q DBTX, ceiling int) (int64, error) {
	result, err := q.Exec(`
		DELETE FROM entries
		WHERE pinned = 0 AND id NOT IN (
			SELECT id FROM entries
			WHERE pinned = 0
			`+recentOrder+`
			LIMIT ?
		)
	`, ceiling)
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return removed, nil
}

// GetByPosition returns the entry at a 1-based position in the history
// ordering. Positions below 1 or past the end yield NOT_FOUND.
func GetByPosition(q DBTX, position int) (*entry.Entry, error) {
	if position < 1 {
		return nil, errors.NewNotFound(position)
	}

	row := q.QueryRow(`
		SELECT `+entryColumns+` FROM entries
		`+recentOrder+`
		LIMIT 1 OFFSET ?
	`, position-1)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(position)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return e, nil
}

// ListRecent returns up to limit entries, most recently touched first.
func ListRecent(q DBTX, limit int) ([]entry.Entry, error) {
	if limit <= 0 {
		return []entry.Entry{}, nil
	}

	rows, err := q.Query(`
		SELECT `+entryColumns+` FROM entries
		`+recentOrder+`
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// AllRecent returns every live entry, most recently touched first.
// Used by search (which filters in Go) and by export.
func AllRecent(q DBTX) ([]entry.Entry, error) {
	rows, err := q.Query(`SELECT ` + entryColumns + ` FROM entries ` + recentOrder)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// DeleteByID removes an entry, reporting whether a row was deleted.
func DeleteByID(q DBTX, id int64) (bool, error) {
	result, err := q.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return affected > 0, nil
}

// Clear deletes all entries, or all non-pinned entries when keepPinned is
// true. Returns the number of rows removed.
func Clear(q DBTX, keepPinned bool) (int64, error) {
	query := "DELETE FROM entries"
	if keepPinned {
		query += " WHERE pinned = 0"
	}

	result, err := q.Exec(query)
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return removed, nil
}

// SetPinned updates an entry's pinned flag. last_touched_at is left alone so
// pinning does not reorder history. Reports whether the entry existed.
func SetPinned(q DBTX, id int64, pinned bool) (bool, error) {
	result, err := q.Exec("UPDATE entries SET pinned = ? WHERE id = ?", boolToInt(pinned), id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return affected > 0, nil
}

// Aggregates holds the summary numbers for the stats operation.
// Oldest and Newest are nil when the history is empty.
type Aggregates struct {
	TotalCount  int
	PinnedCount int
	TotalChars  int64
	TotalWords  int64
	Oldest      *int64
	Newest      *int64
}

// GetAggregates computes counts, character/word sums, and the timestamp range
// over the full live set.
func GetAggregates(q DBTX) (*Aggregates, error) {
	var agg Aggregates
	var oldest, newest sql.NullInt64

	err := q.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(pinned), 0),
		       COALESCE(SUM(char_count), 0),
		       COALESCE(SUM(word_count), 0),
		       MIN(last_touched_at),
		       MAX(last_touched_at)
		FROM entries
	`).Scan(&agg.TotalCount, &agg.PinnedCount, &agg.TotalChars, &agg.TotalWords, &oldest, &newest)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	if oldest.Valid {
		agg.Oldest = &oldest.Int64
	}
	if newest.Valid {
		agg.Newest = &newest.Int64
	}
	return &agg, nil
}

// scanEntry scans a single row into an Entry.
func scanEntry(row *sql.Row) (*entry.Entry, error) {
	var e entry.Entry
	var pinned int
	err := row.Scan(&e.ID, &e.Content, &e.Fingerprint, &e.LastTouchedAt,
		&e.Source, &e.CharCount, &e.WordCount, &pinned)
	if err != nil {
		return nil, err
	}
	e.Pinned = pinned != 0
	return &e, nil
}

// collectEntries drains rows into a slice.
func collectEntries(rows *sql.Rows) ([]entry.Entry, error) {
	entries := []entry.Entry{}
	for rows.Next() {
		var e entry.Entry
		var pinned int
		if err := rows.Scan(&e.ID, &e.Content, &e.Fingerprint, &e.LastTouchedAt,
			&e.Source, &e.CharCount, &e.WordCount, &pinned); err != nil {
			return nil, errors.NewInternal(err)
		}
		e.Pinned = pinned != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
