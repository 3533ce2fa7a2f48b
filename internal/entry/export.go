package entry

import "time"

// ExportRecord is the wire form of an Entry in structured (JSON) exports.
// Every field is always emitted; Import only requires Content and recomputes
// the rest on the way back in.
type ExportRecord struct {
	ID            int64  `json:"id"`
	Content       string `json:"content"`
	Fingerprint   string `json:"content_fingerprint"`
	LastTouchedAt string `json:"last_touched_at"`
	Source        string `json:"source"`
	CharCount     int    `json:"char_count"`
	WordCount     int    `json:"word_count"`
	Pinned        bool   `json:"pinned"`
}

// ToExportRecord converts an Entry to its export form.
func ToExportRecord(e *Entry) ExportRecord {
	return ExportRecord{
		ID:            e.ID,
		Content:       e.Content,
		Fingerprint:   e.Fingerprint,
		LastTouchedAt: e.Touched().Format(time.RFC3339Nano),
		Source:        e.Source,
		CharCount:     e.CharCount,
		WordCount:     e.WordCount,
		Pinned:        e.Pinned,
	}
}
