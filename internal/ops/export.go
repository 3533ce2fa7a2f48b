package ops

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Format Format // json or txt
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Data  string `json:"data"`
	Count int    `json:"count"`
}

// Export serializes every live entry, most-recent-first. The structured
// (json) form carries all fields and round-trips through Import; the plain
// (txt) form is a human-readable dump.
func Export(database *sql.DB, input ExportInput) (*ExportOutput, error) {
	entries, err := db.AllRecent(database)
	if err != nil {
		return nil, err
	}

	switch input.Format {
	case FormatJSON:
		records := make([]entry.ExportRecord, len(entries))
		for i := range entries {
			records[i] = entry.ToExportRecord(&entries[i])
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		return &ExportOutput{Data: string(data), Count: len(entries)}, nil

	case FormatText:
		var b strings.Builder
		for i := range entries {
			e := &entries[i]
			fmt.Fprintf(&b, "=== Entry %d (%s) ===\n", i+1, e.Touched().Format(time.RFC3339))
			b.WriteString(e.Content)
			b.WriteString("\n\n")
		}
		return &ExportOutput{Data: b.String(), Count: len(entries)}, nil

	default:
		return nil, errors.NewUnsupportedFormat(string(input.Format))
	}
}
