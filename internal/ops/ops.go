package ops

// Result limits
const (
	DefaultListLimit   = 10
	DefaultSearchLimit = 20
	MaxSearchLimit     = 1000
)

// Format identifies an export/import encoding.
type Format string

const (
	// FormatJSON is the structured format: a JSON array of entry records,
	// most-recent-first. The only format accepted by Import.
	FormatJSON Format = "json"

	// FormatText is the human-readable plain format: one block per entry
	// with a visible delimiter and index.
	FormatText Format = "txt"
)
