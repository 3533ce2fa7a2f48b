package ops

import (
	"database/sql"
	"os"
	"time"

	"github.com/donkronk/clipstack/internal/db"
)

// StatsInput contains parameters for the Stats operation.
type StatsInput struct {
	DBPath string // storage file location, reported and sized
}

// StatsOutput contains the result of the Stats operation.
// Timestamps are nil when the history is empty.
type StatsOutput struct {
	TotalCount       int        `json:"total_count"`
	PinnedCount      int        `json:"pinned_count"`
	TotalChars       int64      `json:"total_chars"`
	TotalWords       int64      `json:"total_words"`
	OldestTimestamp  *time.Time `json:"oldest_timestamp,omitempty"`
	NewestTimestamp  *time.Time `json:"newest_timestamp,omitempty"`
	StorageSizeBytes int64      `json:"storage_size_bytes"`
	StorageLocation  string     `json:"storage_location"`
}

// Stats summarizes the full live history set plus the storage file.
func Stats(database *sql.DB, input StatsInput) (*StatsOutput, error) {
	agg, err := db.GetAggregates(database)
	if err != nil {
		return nil, err
	}

	out := &StatsOutput{
		TotalCount:      agg.TotalCount,
		PinnedCount:     agg.PinnedCount,
		TotalChars:      agg.TotalChars,
		TotalWords:      agg.TotalWords,
		StorageLocation: input.DBPath,
	}

	if agg.Oldest != nil {
		t := time.Unix(0, *agg.Oldest)
		out.OldestTimestamp = &t
	}
	if agg.Newest != nil {
		t := time.Unix(0, *agg.Newest)
		out.NewestTimestamp = &t
	}

	// Size is best-effort; a missing file just reports zero.
	if info, err := os.Stat(input.DBPath); err == nil {
		out.StorageSizeBytes = info.Size()
	}

	return out, nil
}
