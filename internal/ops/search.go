package ops

import (
	"database/sql"
	"regexp"
	"strings"

	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/entry"
	"github.com/donkronk/clipstack/internal/errors"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Query string // required; regex, falling back to substring
	Limit int    // default: 20, max: 1000
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Items []entry.Entry `json:"items"`
	Count int           `json:"count"`
	Regex bool          `json:"regex"` // false when the substring fallback was used
}

// Search scans the history most-recent-first for entries whose content
// matches the query. The query is treated as a case-insensitive regular
// expression; if it does not compile, it degrades to a case-insensitive
// substring match. Collection stops once Limit matches are found.
func Search(database *sql.DB, input SearchInput) (*SearchOutput, error) {
	query := input.Query
	if query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	matcher, isRegex := compileMatcher(query)

	// The full set is bounded (retention ceiling + pins), so a re-scan per
	// query is the deliberate simplicity-over-throughput choice here.
	entries, err := db.AllRecent(database)
	if err != nil {
		return nil, err
	}

	items := []entry.Entry{}
	for _, e := range entries {
		if matcher(e.Content) {
			items = append(items, e)
			if len(items) >= limit {
				break
			}
		}
	}

	return &SearchOutput{Items: items, Count: len(items), Regex: isRegex}, nil
}

// compileMatcher builds a case-insensitive content matcher from the query,
// reporting whether regex matching is in effect.
func compileMatcher(query string) (func(string) bool, bool) {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		needle := strings.ToLower(query)
		return func(content string) bool {
			return strings.Contains(strings.ToLower(content), needle)
		}, false
	}
	return re.MatchString, true
}
