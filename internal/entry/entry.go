package entry

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"
)

// Source tags where an entry came from. Provenance only; no behavioral effect.
const (
	SourceClipboard = "clipboard"
	SourceManual    = "manual"
	SourceImport    = "import"
	SourceWatch     = "watch"
)

// Entry represents one stored clipboard capture with metadata.
type Entry struct {
	// ID is assigned by SQLite AUTOINCREMENT; stable and unique for the
	// entry's lifetime.
	ID int64 `json:"id"`

	// Content is the captured text. Never empty after trimming.
	Content string `json:"content"`

	// Fingerprint is the SHA-256 hex digest of Content, used for duplicate
	// detection together with a full content comparison.
	Fingerprint string `json:"fingerprint"`

	// LastTouchedAt is set at creation and refreshed when identical content
	// is added again. Unix nanoseconds.
	LastTouchedAt int64 `json:"last_touched_at"`

	// Source is one of the Source* constants.
	Source string `json:"source"`

	// CharCount is the rune count of Content.
	CharCount int `json:"char_count"`

	// WordCount is the count of whitespace-delimited tokens in Content.
	WordCount int `json:"word_count"`

	// Pinned entries are exempt from retention pruning and default clear.
	Pinned bool `json:"pinned"`
}

// New builds an unsaved Entry from content, computing fingerprint and counts.
func New(content, source string) *Entry {
	return &Entry{
		Content:       content,
		Fingerprint:   Fingerprint(content),
		LastTouchedAt: time.Now().UnixNano(),
		Source:        source,
		CharCount:     utf8.RuneCountInString(content),
		WordCount:     len(strings.Fields(content)),
	}
}

// Fingerprint returns the SHA-256 hex digest of content.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Touched returns LastTouchedAt as a time.Time.
func (e *Entry) Touched() time.Time {
	return time.Unix(0, e.LastTouchedAt)
}
